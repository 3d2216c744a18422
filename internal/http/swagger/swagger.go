package swagger

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	apicontract "github.com/tuanvumaihuynh/product-catalog/api-contract"
)

const (
	// DocsPath serves the Swagger UI.
	DocsPath = "/docs"
	// SpecYAMLPath serves the embedded OpenAPI document as written.
	SpecYAMLPath = "/docs/openapi.yml"
	// SpecJSONPath serves the same document after validation, encoded as JSON.
	SpecJSONPath = "/docs/openapi.json"

	swaggerUIVersion = "5.29.3"
)

// Register mounts the docs routes on r.
func Register(r chi.Router) {
	page := []byte(uiPage("Product Catalog API", SpecYAMLPath))

	r.Get(DocsPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		//nolint:errcheck
		w.Write(page)
	})

	specYAML := apicontract.GetSpecBytes()
	r.Get(SpecYAMLPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		//nolint:errcheck
		w.Write(specYAML)
	})

	specJSON := sync.OnceValues(func() ([]byte, error) {
		doc, err := apicontract.Load()
		if err != nil {
			return nil, err
		}
		return json.Marshal(doc)
	})
	r.Get(SpecJSONPath, func(w http.ResponseWriter, _ *http.Request) {
		b, err := specJSON()
		if err != nil {
			http.Error(w, "openapi document unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck
		w.Write(b)
	})
}

func uiPage(title, specPath string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>%[1]s</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@%[3]s/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@%[3]s/swagger-ui-bundle.js" crossorigin></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: '%[2]s',
      dom_id: '#swagger-ui',
      deepLinking: true,
      tryItOutEnabled: true,
    });
  };
</script>
</body>
</html>
`, title, specPath, swaggerUIVersion)
}
