package libcatalog

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

type (
	// A Client defines all interactions that can be performed on an item catalog.
	Client interface {
		// ReadItems returns all the items of the catalog.
		// Any failure is returned as a *RemoteCallError.
		ReadItems(ctx context.Context) ([]Item, error)
	}

	client struct {
		http     *http.Client
		endpoint string
		parsers  fastjson.ParserPool
	}
)

// NewDefaultClient returns a new Client with default HTTP client.
func NewDefaultClient(endpoint string) (Client, error) {
	return NewClient(http.DefaultClient, endpoint)
}

// NewClient returns a new Client.
func NewClient(c *http.Client, endpoint string) (Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse endpoint")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("invalid endpoint %q", endpoint)
	}
	return &client{endpoint: endpoint, http: c}, nil
}

func (c *client) ReadItems(ctx context.Context) ([]Item, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, newRemoteCallError(KindTransport, errors.Wrap(err, "could not parse endpoint"))
	}
	u.Path = path.Join(u.Path, "/items")

	//
	// Build request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, newRemoteCallError(KindTransport, errors.Wrap(err, "could not build request"))
	}
	req.Header.Add("Accept", "application/json, application/hal+json")

	//
	// Perform request
	res, err := c.http.Do(req)
	if err != nil {
		return nil, newRemoteCallError(KindTransport, errors.Wrap(err, "could not perform request"))
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, newRemoteCallError(KindTransport, errors.Wrap(err, "could not read response"))
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		rerr := newRemoteCallError(KindStatus, c.parseError(body, res.Status))
		rerr.StatusCode = res.StatusCode
		return nil, rerr
	}

	//
	// Process response
	items, err := c.parseCollection(body)
	if err != nil {
		return nil, newRemoteCallError(KindDecode, errors.Wrap(err, "could not parse response"))
	}
	return items, nil
}

// parseCollection extracts the items from a `{"content":[...]}` envelope
// or from a HAL `{"_embedded":{"items":[...]}}` envelope.
func (c *client) parseCollection(body []byte) ([]Item, error) {
	p := c.parsers.Get()
	defer c.parsers.Put(p)

	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, err
	}
	if v.Type() != fastjson.TypeObject {
		return nil, errors.Errorf("unexpected %s, expected a collection envelope", v.Type())
	}

	content := v.Get("content")
	if content == nil {
		content = v.Get("_embedded", "items")
	}
	if content == nil {
		return nil, errors.New("missing collection content")
	}

	values, err := content.Array()
	if err != nil {
		return nil, errors.Wrap(err, "invalid collection content")
	}

	items := make([]Item, 0, len(values))
	for i, value := range values {
		if value.Type() != fastjson.TypeObject || value.Get("name") == nil {
			return nil, errors.Errorf("item %d: expected an object with a name", i)
		}

		id, err := itemID(value)
		if err != nil {
			return nil, errors.Wrapf(err, "item %d: invalid id", i)
		}
		name, err := value.Get("name").StringBytes()
		if err != nil {
			return nil, errors.Wrapf(err, "item %d: invalid name", i)
		}
		items = append(items, Item{ID: id, Name: string(name)})
	}
	return items, nil
}

// itemID returns the `id` field or, for HAL renders without ids, the last
// segment of `_links.self.href`. It is zero when neither is present.
func itemID(v *fastjson.Value) (uint64, error) {
	if id := v.Get("id"); id != nil {
		return id.Uint64()
	}

	href := v.GetStringBytes("_links", "self", "href")
	if len(href) == 0 {
		return 0, nil
	}

	u, err := url.Parse(string(href))
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(path.Base(u.Path), 10, 64)
}

func (c *client) parseError(body []byte, status string) error {
	p := c.parsers.Get()
	defer c.parsers.Put(p)

	v, err := p.ParseBytes(body)
	if err == nil {
		if message := v.GetStringBytes("error", "message"); len(message) > 0 {
			return errors.New(string(message))
		}
	}
	return errors.Errorf("unexpected status %s", status)
}
