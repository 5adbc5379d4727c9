package store

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
)

// restClient speaks the PostgREST wire syntax used by hosted stores such as
// Supabase: one resource path per collection, filter/order expressed as query
// parameters, and the access key sent both as apikey and bearer token.
type restClient struct {
	base string
	key  string
	hc   *http.Client
}

// NewREST returns a Client backed by a PostgREST endpoint. baseURL is the
// project root (without the /rest/v1 suffix).
func NewREST(baseURL, key string) Client {
	return &restClient{
		base: strings.TrimRight(baseURL, "/"),
		key:  key,
		hc:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *restClient) endpoint(collection string) string {
	return c.base + "/rest/v1/" + collection
}

func (c *restClient) newRequest(ctx context.Context, method, rawURL string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// queryParams renders filters, search and ordering into PostgREST syntax.
func queryParams(q Query) url.Values {
	params := url.Values{}
	params.Set("select", "*")
	for _, f := range q.activeFilters() {
		params.Set(f.Column, "eq."+f.Value)
	}
	if !q.Search.empty() {
		term := escapeLikeTerm(q.Search.Term)
		parts := make([]string, 0, len(q.Search.Columns))
		for _, col := range q.Search.Columns {
			parts = append(parts, col+".ilike.*"+term+"*")
		}
		params.Set("or", "("+strings.Join(parts, ",")+")")
	}
	if len(q.Order) > 0 {
		keys := make([]string, 0, len(q.Order))
		for _, o := range q.Order {
			dir := "asc"
			if o.Descending {
				dir = "desc"
			}
			keys = append(keys, o.Column+"."+dir)
		}
		params.Set("order", strings.Join(keys, ","))
	}
	return params
}

// escapeLikeTerm strips PostgREST reserved characters from a raw search term
// so user input cannot alter the filter grammar.
func escapeLikeTerm(term string) string {
	r := strings.NewReplacer(",", "", "(", "", ")", "", "*", "", "%", "", ".", "")
	return r.Replace(term)
}

func (c *restClient) do(req *http.Request) (*http.Response, error) {
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

func errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
}

func (c *restClient) Select(ctx context.Context, q Query) ([]Row, error) {
	if err := validateIdents(q); err != nil {
		return nil, err
	}
	u := c.endpoint(q.Collection) + "?" + queryParams(q).Encode()
	req, err := c.newRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp)
	}
	var rows []Row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

func (c *restClient) Get(ctx context.Context, collection, id string) (Row, error) {
	q := Query{Collection: collection, Filters: []Filter{{Column: "id", Value: id}}}
	if err := validateIdents(q); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("select", "*")
	params.Set("id", "eq."+id)
	req, err := c.newRequest(ctx, http.MethodGet, c.endpoint(collection)+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	// The object accept header makes PostgREST answer 406 for zero rows,
	// which is the NotFound signal.
	req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotAcceptable, http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s %q", ErrNotFound, collection, id)
	default:
		return nil, errorFromResponse(resp)
	}
	var row Row
	if err := json.NewDecoder(resp.Body).Decode(&row); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return row, nil
}

func (c *restClient) Count(ctx context.Context, q Query) (int, error) {
	if err := validateIdents(q); err != nil {
		return 0, err
	}
	params := queryParams(q)
	params.Del("order")
	req, err := c.newRequest(ctx, http.MethodHead, c.endpoint(q.Collection)+"?"+params.Encode(), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Prefer", "count=exact")
	resp, err := c.do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return 0, errorFromResponse(resp)
	}
	// Content-Range: items 0-24/57 — the total follows the slash.
	cr := resp.Header.Get("Content-Range")
	if i := strings.LastIndex(cr, "/"); i >= 0 {
		total, err := strconv.Atoi(cr[i+1:])
		if err == nil {
			return total, nil
		}
	}
	return 0, fmt.Errorf("%w: missing count in Content-Range %q", ErrUnavailable, cr)
}

func (c *restClient) Insert(ctx context.Context, collection string, row Row) (Row, error) {
	if err := validateIdents(Query{Collection: collection}); err != nil {
		return nil, err
	}
	body, err := json.Marshal([]Row{row})
	if err != nil {
		return nil, fmt.Errorf("store: encode insert: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, c.endpoint(collection), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp)
	}
	var rows []Row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: insert returned no representation", ErrUnavailable)
	}
	return rows[0], nil
}
