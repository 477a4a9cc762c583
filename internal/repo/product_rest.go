package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/rogerio-castellano/pubstock/internal/models"
)

// RESTConfig describes a PostgREST endpoint (a hosted Supabase project or a
// self-hosted PostgREST) exposing the products table.
type RESTConfig struct {
	BaseURL string // e.g. https://project.supabase.co/rest/v1
	Table   string

	// APIKey is sent as the apikey header and as the bearer token. When it is
	// empty a short-lived role token is signed with JWTSecret instead.
	APIKey    string
	JWTSecret string
	Role      string

	RatePerSecond float64
	Burst         int
	Timeout       time.Duration
}

// RESTProductRepository talks to the products table over the PostgREST protocol.
type RESTProductRepository struct {
	cfg     RESTConfig
	client  *http.Client
	limiter *rate.Limiter
	now     func() time.Time
}

func NewRESTProductRepository(cfg RESTConfig, client *http.Client) *RESTProductRepository {
	if cfg.Table == "" {
		cfg.Table = "products"
	}
	if cfg.Role == "" {
		cfg.Role = "service_role"
	}
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &RESTProductRepository{
		cfg:     cfg,
		client:  client,
		limiter: rate.NewLimiter(limit, burst),
		now:     time.Now,
	}
}

// restProduct is the wire shape of a row; every column may be null.
type restProduct struct {
	ID           int                 `json:"id"`
	Name         *string             `json:"name"`
	Quantity     *int                `json:"quantity"`
	MinThreshold *int                `json:"min_threshold"`
	Category     *string             `json:"category"`
	Price        decimal.NullDecimal `json:"price"`
	CreatedAt    *time.Time          `json:"created_at"`
}

func (rp restProduct) product() models.Product {
	p := models.Product{ID: rp.ID}
	if rp.Name != nil {
		p.Name = *rp.Name
	}
	if rp.Quantity != nil {
		p.Quantity = *rp.Quantity
	}
	if rp.MinThreshold != nil {
		p.MinThreshold = *rp.MinThreshold
	}
	if rp.Category != nil {
		p.Category = *rp.Category
	}
	if rp.Price.Valid {
		p.Price = rp.Price.Decimal
	}
	if rp.CreatedAt != nil {
		p.CreatedAt = *rp.CreatedAt
	}
	return p
}

type restInput struct {
	Name         string      `json:"name"`
	Quantity     int         `json:"quantity"`
	MinThreshold int         `json:"min_threshold"`
	Category     string      `json:"category"`
	Price        json.Number `json:"price"`
}

func newRESTInput(in models.ProductInput) restInput {
	return restInput{
		Name:         in.Name,
		Quantity:     in.Quantity,
		MinThreshold: in.MinThreshold,
		Category:     in.Category,
		Price:        json.Number(in.Price.StringFixed(2)),
	}
}

func (r *RESTProductRepository) List(ctx context.Context) ([]models.Product, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "created_at.desc")

	var rows []restProduct
	if err := r.do(ctx, http.MethodGet, q, nil, &rows); err != nil {
		return nil, err
	}

	products := make([]models.Product, len(rows))
	for i, row := range rows {
		products[i] = row.product()
	}
	return products, nil
}

func (r *RESTProductRepository) Insert(ctx context.Context, in models.ProductInput) (models.Product, error) {
	var rows []restProduct
	if err := r.do(ctx, http.MethodPost, nil, []restInput{newRESTInput(in)}, &rows); err != nil {
		return models.Product{}, err
	}
	if len(rows) == 0 {
		return models.Product{}, fmt.Errorf("insert into %s returned no rows", r.cfg.Table)
	}
	return rows[0].product(), nil
}

func (r *RESTProductRepository) Update(ctx context.Context, id int, in models.ProductInput) error {
	var rows []restProduct
	if err := r.do(ctx, http.MethodPatch, idFilter(id), newRESTInput(in), &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *RESTProductRepository) Delete(ctx context.Context, id int) error {
	var rows []restProduct
	if err := r.do(ctx, http.MethodDelete, idFilter(id), nil, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrProductNotFound
	}
	return nil
}

func idFilter(id int) url.Values {
	q := url.Values{}
	q.Set("id", "eq."+strconv.Itoa(id))
	return q
}

func (r *RESTProductRepository) do(ctx context.Context, method string, query url.Values, body any, out any) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}

	endpoint := strings.TrimRight(r.cfg.BaseURL, "/") + "/" + r.cfg.Table
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if err := r.authorize(req); err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: unexpected status %s: %s", method, r.cfg.Table, resp.Status, strings.TrimSpace(string(msg)))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("decoding %s response: %w", r.cfg.Table, err)
	}
	return nil
}

func (r *RESTProductRepository) authorize(req *http.Request) error {
	token := r.cfg.APIKey
	if token == "" {
		if r.cfg.JWTSecret == "" {
			return nil
		}
		signed, err := r.roleToken()
		if err != nil {
			return fmt.Errorf("signing role token: %w", err)
		}
		token = signed
	}
	req.Header.Set("apikey", token)
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

// roleToken signs a token carrying the configured database role, the way the
// hosted datastore's own API keys are built.
func (r *RESTProductRepository) roleToken() (string, error) {
	now := r.now()
	claims := jwt.MapClaims{
		"role": r.cfg.Role,
		"iss":  "pubstock",
		"iat":  now.Unix(),
		"exp":  now.Add(5 * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(r.cfg.JWTSecret))
}
