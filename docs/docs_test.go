package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocRegistered(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var parsed struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		BasePath string `json:"basePath"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}
	if parsed.Info.Title != SwaggerInfo.Title {
		t.Errorf("title = %q, want %q", parsed.Info.Title, SwaggerInfo.Title)
	}
	if parsed.BasePath != SwaggerInfo.BasePath {
		t.Errorf("basePath = %q, want %q", parsed.BasePath, SwaggerInfo.BasePath)
	}
}
