package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"adornia-be/internal/logger"

	"go.uber.org/zap"
)

const apiVersion = "v2024-12-01"

// Client reads and patches product documents in the hosted content store.
type Client interface {
	ProductBySlug(ctx context.Context, slug string) (*Product, error)
	ProductsByCategory(ctx context.Context, category Category, subcategory string, limit int) ([]Product, error)
	SearchProducts(ctx context.Context, query string, limit int) ([]Product, error)
	FeaturedProducts(ctx context.Context, limit int) ([]Product, error)
	NewArrivals(ctx context.Context, limit int) ([]Product, error)
	ProductsByIDs(ctx context.Context, ids []string) ([]Product, error)
	ProductForUpdate(ctx context.Context, id string) (*Product, error)
	PatchInventory(ctx context.Context, id, revision string, inventory []VariantRecord) error
}

type httpClient struct {
	baseURL    string
	dataset    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, dataset, token string) Client {
	if token == "" {
		logger.L().Warn("content API token is empty, inventory writes will be rejected")
	}

	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		dataset: dataset,
		token:   token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

const productProjection = `{
  _id, name, "slug": slug.current, price, discountPrice,
  category, subcategory,
  "mainImage": {"url": mainImage.asset->url, "alt": mainImage.alt},
  inventory, isFeatured, isNew
}`

// ----------------- Reads -----------------

func (c *httpClient) ProductBySlug(ctx context.Context, slug string) (*Product, error) {
	query := fmt.Sprintf(`*[_type == "product" && slug.current == $slug][0] %s`, productProjection)

	var p *Product
	if err := c.query(ctx, query, map[string]any{"slug": slug}, &p); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	p.finalize()
	return p, nil
}

func (c *httpClient) ProductsByCategory(ctx context.Context, category Category, subcategory string, limit int) ([]Product, error) {
	filter := `_type == "product" && category == $category`
	params := map[string]any{"category": string(category)}
	if subcategory != "" {
		filter += ` && subcategory == $subcategory`
		params["subcategory"] = subcategory
	}

	query := fmt.Sprintf(`*[%s] | order(_createdAt desc) %s %s`,
		filter, sliceClause(limit), productProjection)

	return c.queryProducts(ctx, query, params)
}

// SearchProducts runs a wildcard text match across the product's name,
// category, subcategory and variant dimensions, newest first.
func (c *httpClient) SearchProducts(ctx context.Context, query string, limit int) ([]Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Product{}, nil
	}

	filter := `_type == "product" && (` +
		`name match $q || ` +
		`category match $q || ` +
		`subcategory match $q || ` +
		`inventory[].size match $q || ` +
		`inventory[].color match $q)`

	groq := fmt.Sprintf(`*[%s] | order(_createdAt desc) %s %s`,
		filter, sliceClause(limit), productProjection)

	return c.queryProducts(ctx, groq, map[string]any{"q": "*" + query + "*"})
}

func (c *httpClient) FeaturedProducts(ctx context.Context, limit int) ([]Product, error) {
	query := fmt.Sprintf(`*[_type == "product" && isFeatured == true] | order(_createdAt desc) %s %s`,
		sliceClause(limit), productProjection)
	return c.queryProducts(ctx, query, nil)
}

func (c *httpClient) NewArrivals(ctx context.Context, limit int) ([]Product, error) {
	query := fmt.Sprintf(`*[_type == "product" && isNew == true] | order(_createdAt desc) %s %s`,
		sliceClause(limit), productProjection)
	return c.queryProducts(ctx, query, nil)
}

func (c *httpClient) ProductsByIDs(ctx context.Context, ids []string) ([]Product, error) {
	query := fmt.Sprintf(`*[_type == "product" && _id in $ids] %s`, productProjection)
	return c.queryProducts(ctx, query, map[string]any{"ids": ids})
}

// ProductForUpdate fetches the full document including its revision marker
// so the caller can attempt an optimistic inventory patch.
func (c *httpClient) ProductForUpdate(ctx context.Context, id string) (*Product, error) {
	query := `*[_type == "product" && _id == $id][0] { _id, _rev, name, category, inventory }`

	var p *Product
	if err := c.query(ctx, query, map[string]any{"id": id}, &p); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (c *httpClient) queryProducts(ctx context.Context, query string, params map[string]any) ([]Product, error) {
	var products []Product
	if err := c.query(ctx, query, params, &products); err != nil {
		return nil, err
	}
	for i := range products {
		products[i].finalize()
	}
	return products, nil
}

func sliceClause(limit int) string {
	if limit <= 0 {
		return ""
	}
	return fmt.Sprintf("[0...%d]", limit)
}

func (c *httpClient) query(ctx context.Context, query string, params map[string]any, out any) error {
	values := url.Values{}
	values.Set("query", query)
	for k, v := range params {
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode query param %s: %w", k, err)
		}
		values.Set("$"+k, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/%s/data/query/%s?%s", c.baseURL, apiVersion, c.dataset, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.FromCtx(ctx).Error("content store query failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrContentStoreError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read content store response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.FromCtx(ctx).Error("content store returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", body),
		)
		return fmt.Errorf("%w: status %d", ErrContentStoreError, resp.StatusCode)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decode content store envelope: %w", err)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	return json.Unmarshal(envelope.Result, out)
}

// ----------------- Writes -----------------

// PatchInventory replaces a product's inventory table guarded by the document
// revision the caller read. A stale revision yields ErrRevisionConflict.
func (c *httpClient) PatchInventory(ctx context.Context, id, revision string, inventory []VariantRecord) error {
	log := logger.FromCtx(ctx).With(
		zap.String("product_id", id),
		zap.String("revision", revision),
	)

	mutation := map[string]any{
		"mutations": []any{
			map[string]any{
				"patch": map[string]any{
					"id":           id,
					"ifRevisionID": revision,
					"set": map[string]any{
						"inventory": inventory,
					},
				},
			},
		},
	}

	jsonBody, err := json.Marshal(mutation)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/%s/data/mutate/%s", c.baseURL, apiVersion, c.dataset)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("inventory patch request failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrContentStoreError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read content store response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusConflict:
		log.Warn("inventory patch rejected, document revision is stale")
		return ErrRevisionConflict
	default:
		log.Error("inventory patch returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", body),
		)
		return fmt.Errorf("%w: status %d", ErrContentStoreError, resp.StatusCode)
	}
}

func (c *httpClient) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
