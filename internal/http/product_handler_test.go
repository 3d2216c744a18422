package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/config"
	apphttp "github.com/tuanvumaihuynh/product-catalog/internal/http"
	"github.com/tuanvumaihuynh/product-catalog/internal/http/gen"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/internal/service"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/sqlite"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
	"github.com/tuanvumaihuynh/product-catalog/pkg/validator"
)

type testApp struct {
	router chi.Router
	repo   repository.ProductRepository
}

func setupApp(t *testing.T) testApp {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	client, err := sqlite.Open(context.Background(), dsn, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	repo := repository.NewGormProductRepository(client.DB)
	productSvc := service.NewProductService(repo, v)

	svc := apphttp.New(config.HTTP{CorsAllowedOrigin: "http://localhost:4200"}, logger, productSvc, client)

	return testApp{router: svc.Router(), repo: repo}
}

func (a testApp) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	a.router.ServeHTTP(resp, req)

	return resp
}

func (a testApp) seed(t *testing.T, product model.Product) model.Product {
	t.Helper()

	saved, err := a.repo.Save(context.Background(), product)
	require.NoError(t, err)
	return saved
}

func productPath(id int64) string {
	return "/products/" + strconv.FormatInt(id, 10)
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &v), resp.Body.String())
	return v
}

func TestListProducts(t *testing.T) {
	t.Run("Should return empty array", func(t *testing.T) {
		app := setupApp(t)

		resp := app.do(t, http.MethodGet, "/products", nil)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `[]`, resp.Body.String())
	})

	t.Run("Should return exactly the stored products", func(t *testing.T) {
		app := setupApp(t)
		p1 := app.seed(t, model.Product{ExtID: "extId1", Name: "name1"})
		p2 := app.seed(t, model.Product{ExtID: "extId2", Name: "name2"})

		resp := app.do(t, http.MethodGet, "/products", nil)

		require.Equal(t, http.StatusOK, resp.Code)
		products := decode[[]gen.ProductResponse](t, resp)
		require.Len(t, products, 2)
		assert.NotEqual(t, products[0].Id, products[1].Id)
		assert.ElementsMatch(t, []gen.ProductResponse{
			{Id: p1.ID, ExtId: "extId1", Name: "name1"},
			{Id: p2.ID, ExtId: "extId2", Name: "name2"},
		}, products)
	})
}

func TestCreateProduct(t *testing.T) {
	t.Run("Should create product with generated id", func(t *testing.T) {
		app := setupApp(t)

		resp := app.do(t, http.MethodPost, "/products", map[string]any{
			"extId":       "valid extId",
			"name":        "valid name",
			"description": "solid oak",
		})

		require.Equal(t, http.StatusCreated, resp.Code)
		created := decode[gen.ProductResponse](t, resp)
		assert.NotZero(t, created.Id)
		assert.Equal(t, "valid extId", created.ExtId)
		assert.Equal(t, "valid name", created.Name)
		assert.Equal(t, ptr.New("solid oak"), created.Description)

		stored, err := app.repo.FindByID(context.Background(), created.Id)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.True(t, stored.Equal(model.Product{ID: created.Id}))
	})

	t.Run("Should create product without description", func(t *testing.T) {
		app := setupApp(t)

		resp := app.do(t, http.MethodPost, "/products", map[string]any{"extId": "e", "name": "n"})

		require.Equal(t, http.StatusCreated, resp.Code)
		assert.Contains(t, resp.Body.String(), `"description":null`)
	})

	t.Run("Should reject client supplied id", func(t *testing.T) {
		app := setupApp(t)

		for _, body := range []map[string]any{
			{"id": 1, "extId": "valid extId", "name": "valid name"},
			{"id": 1},
		} {
			resp := app.do(t, http.MethodPost, "/products", body)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Equal(t, "PRODUCT_ID_NOT_ALLOWED", decode[gen.ErrorResponse](t, resp).Code)
		}

		products, err := app.repo.FindAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Should accept explicit null id", func(t *testing.T) {
		app := setupApp(t)

		resp := app.do(t, http.MethodPost, "/products", `{"id":null,"extId":"e","name":"n"}`)

		assert.Equal(t, http.StatusCreated, resp.Code)
	})

	t.Run("Should report missing fields", func(t *testing.T) {
		app := setupApp(t)

		resp := app.do(t, http.MethodPost, "/products", map[string]any{})

		require.Equal(t, http.StatusBadRequest, resp.Code)
		res := decode[gen.ErrorResponse](t, resp)
		assert.Equal(t, "validationError", res.Code)
		require.NotNil(t, res.Details)
		assert.ElementsMatch(t, []gen.FieldError{
			{Field: "extId", Message: "field is required"},
			{Field: "name", Message: "field is required"},
		}, *res.Details)
	})

	t.Run("Should reject blank name", func(t *testing.T) {
		app := setupApp(t)

		resp := app.do(t, http.MethodPost, "/products", map[string]any{"extId": "e", "name": "   "})

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("Should reject malformed body", func(t *testing.T) {
		app := setupApp(t)

		resp := app.do(t, http.MethodPost, "/products", `{"extId":`)

		require.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode[gen.ErrorResponse](t, resp).Code)
	})
}

func TestGetProduct(t *testing.T) {
	app := setupApp(t)
	p := app.seed(t, model.Product{ExtID: "e", Name: "n", Description: ptr.New("d")})

	t.Run("Should return product", func(t *testing.T) {
		resp := app.do(t, http.MethodGet, productPath(p.ID), nil)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, gen.ProductResponse{Id: p.ID, ExtId: "e", Name: "n", Description: ptr.New("d")},
			decode[gen.ProductResponse](t, resp))
	})

	t.Run("Should return not found", func(t *testing.T) {
		resp := app.do(t, http.MethodGet, productPath(p.ID+100), nil)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("Should reject non numeric id", func(t *testing.T) {
		resp := app.do(t, http.MethodGet, "/products/abc", nil)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestDeleteProduct(t *testing.T) {
	app := setupApp(t)
	p := app.seed(t, model.Product{ExtID: "extId", Name: "name"})

	resp := app.do(t, http.MethodDelete, productPath(p.ID), nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Empty(t, resp.Body.String())

	stored, err := app.repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	resp = app.do(t, http.MethodDelete, productPath(p.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", decode[gen.ErrorResponse](t, resp).Code)
}

func TestUpdateProduct(t *testing.T) {
	t.Run("Should overwrite all fields", func(t *testing.T) {
		app := setupApp(t)
		p := app.seed(t, model.Product{ExtID: "extId", Name: "Old name", Description: ptr.New("old")})

		resp := app.do(t, http.MethodPut, productPath(p.ID), map[string]any{
			"extId": "extId2",
			"name":  "New name",
		})

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, gen.ProductResponse{Id: p.ID, ExtId: "extId2", Name: "New name"},
			decode[gen.ProductResponse](t, resp))

		stored, err := app.repo.FindByID(context.Background(), p.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, model.Product{ID: p.ID, ExtID: "extId2", Name: "New name"}, *stored)
	})

	t.Run("Should replace description", func(t *testing.T) {
		app := setupApp(t)
		p := app.seed(t, model.Product{ExtID: "extId", Name: "name", Description: ptr.New("old")})

		resp := app.do(t, http.MethodPut, productPath(p.ID), map[string]any{
			"extId":       "extId2",
			"name":        "name2",
			"description": "new",
		})

		require.Equal(t, http.StatusOK, resp.Code)
		want := gen.ProductResponse{Id: p.ID, ExtId: "extId2", Name: "name2", Description: ptr.New("new")}
		assert.Equal(t, want, decode[gen.ProductResponse](t, resp))

		resp = app.do(t, http.MethodGet, productPath(p.ID), nil)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, want, decode[gen.ProductResponse](t, resp))
	})

	t.Run("Should return not found for unknown id", func(t *testing.T) {
		app := setupApp(t)
		p := app.seed(t, model.Product{ExtID: "extId", Name: "name"})

		resp := app.do(t, http.MethodPut, productPath(p.ID+1), map[string]any{"extId": "e", "name": "n"})

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("Should reject empty name and keep stored record", func(t *testing.T) {
		app := setupApp(t)
		p := app.seed(t, model.Product{ExtID: "extId", Name: "name", Description: ptr.New("d")})

		resp := app.do(t, http.MethodPut, productPath(p.ID), map[string]any{"extId": "changed", "name": ""})

		assert.Equal(t, http.StatusBadRequest, resp.Code)

		stored, err := app.repo.FindByID(context.Background(), p.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, p, *stored)
	})
}

func TestHealth(t *testing.T) {
	app := setupApp(t)

	resp := app.do(t, http.MethodGet, apphttp.HealthPath, nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}

func TestCorsAllowedOrigin(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	resp := httptest.NewRecorder()
	app.router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "http://localhost:4200", resp.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, resp.Header().Get("X-Correlation-ID"))
}
