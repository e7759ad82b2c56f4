package product

import (
	"encoding/json"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Product is one tracked item. Immutable after load.
type Product struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
}

// Load reads the tracked-product list from a JSON file. A missing file
// or malformed JSON yields an empty list; entries failing validation
// are dropped individually. Neither case is fatal.
func Load(path string, log *zap.SugaredLogger) []Product {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warnw("products_file_missing", "path", path, "err", err)
		return nil
	}

	var entries []Product
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Warnw("products_file_invalid_json", "path", path, "err", err)
		return nil
	}

	v := validator.New()
	products := make([]Product, 0, len(entries))
	for i, p := range entries {
		if err := v.Struct(p); err != nil {
			log.Warnw("product_entry_invalid", "path", path, "index", i, "name", p.Name, "err", err)
			continue
		}
		products = append(products, p)
	}
	return products
}
