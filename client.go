// Package pgstac provides a typed client for a pgstac database.
//
// Every operation maps to a named server-side procedure in the pgstac
// schema. The client encodes requests as positional parameters, expects a
// single row with a single JSON-shaped column back, and decodes it into a
// typed result. "No such record" is reported as a nil result, not an error.
//
// A Client can be created from anything that satisfies Conn: a *pgx.Conn, a
// *pgxpool.Pool, or a pgx.Tx. When created from a transaction, every
// operation participates in it; committing or rolling back stays with the
// caller, who can recover the connection with Inner.
package pgstac

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lk2023060901/pgstac-go/stac"
)

// schema is the Postgres schema all pgstac procedures live in
const schema = "pgstac"

// Client is a pgstac client. Not every pgstac procedure is exposed, and
// some names are changed to match Go conventions.
//
// The client holds no pool and no shared state; it issues calls serially
// against the one Conn it wraps. Concurrent calls are safe only if the
// underlying Conn is (a pool is, a single connection or transaction is not).
type Client struct {
	conn   Conn
	logger *zap.Logger
}

// New creates a new client. The logger may be nil.
func New(conn Conn, logger *zap.Logger) *Client {
	return &Client{conn: conn, logger: logger}
}

// Inner returns the wrapped connection, so that a transactional caller can
// finalize the transaction once it is done with the client.
func (c *Client) Inner() Conn {
	return c.conn
}

// Version returns the pgstac version.
func (c *Client) Version(ctx context.Context) (string, error) {
	return c.callString(ctx, "Version", "get_version", nil)
}

// Setting returns the value of a pgstac setting.
func (c *Client) Setting(ctx context.Context, setting string) (string, error) {
	return c.callString(ctx, "Setting", "get_setting", []any{setting})
}

// Collections fetches all collections.
func (c *Client) Collections(ctx context.Context) ([]*stac.Collection, error) {
	return callList[*stac.Collection](ctx, c, "Collections", "all_collections", nil)
}

// Collection fetches a collection by id. It returns nil, not an error, when
// no collection with that id exists.
func (c *Client) Collection(ctx context.Context, id string) (*stac.Collection, error) {
	return callOptional[stac.Collection](ctx, c, "Collection", "get_collection", []any{id})
}

// AddCollection adds a collection. It fails if a collection with the same
// id already exists.
func (c *Client) AddCollection(ctx context.Context, collection *stac.Collection) error {
	return c.callVoidJSON(ctx, "AddCollection", "create_collection", collection)
}

// UpsertCollection adds or replaces a collection.
func (c *Client) UpsertCollection(ctx context.Context, collection *stac.Collection) error {
	return c.callVoidJSON(ctx, "UpsertCollection", "upsert_collection", collection)
}

// UpdateCollection updates a collection. It fails if no collection with the
// same id exists.
func (c *Client) UpdateCollection(ctx context.Context, collection *stac.Collection) error {
	return c.callVoidJSON(ctx, "UpdateCollection", "update_collection", collection)
}

// DeleteCollection deletes a collection by id. It fails if no collection
// with that id exists.
func (c *Client) DeleteCollection(ctx context.Context, id string) error {
	return c.callVoid(ctx, "DeleteCollection", "delete_collection", []any{id})
}

// Item fetches an item by id and collection. It returns nil, not an error,
// when no such item exists.
func (c *Client) Item(ctx context.Context, id, collection string) (*stac.Item, error) {
	return callOptional[stac.Item](ctx, c, "Item", "get_item", []any{id, collection})
}

// AddItem adds an item. It fails if an item with the same identity already
// exists or if the referenced collection is missing.
func (c *Client) AddItem(ctx context.Context, item *stac.Item) error {
	return c.callVoidJSON(ctx, "AddItem", "create_item", item)
}

// AddItems adds items in one call. The client reports one error for the
// whole batch; atomicity is determined by the server's own transactional
// behavior.
func (c *Client) AddItems(ctx context.Context, items []*stac.Item) error {
	return c.callVoidJSON(ctx, "AddItems", "create_items", items)
}

// UpdateItem updates an item. It fails if no matching item exists.
func (c *Client) UpdateItem(ctx context.Context, item *stac.Item) error {
	return c.callVoidJSON(ctx, "UpdateItem", "update_item", item)
}

// UpsertItem adds or replaces an item.
func (c *Client) UpsertItem(ctx context.Context, item *stac.Item) error {
	return c.callVoidJSON(ctx, "UpsertItem", "upsert_item", item)
}

// UpsertItems adds or replaces items in one call.
func (c *Client) UpsertItems(ctx context.Context, items []*stac.Item) error {
	return c.callVoidJSON(ctx, "UpsertItems", "upsert_items", items)
}

// DeleteItem deletes an item by id and collection. It fails if no such item
// exists.
func (c *Client) DeleteItem(ctx context.Context, id, collection string) error {
	return c.callVoid(ctx, "DeleteItem", "delete_item", []any{id, collection})
}

// Search searches for items. Filtering, sorting, projection and pagination
// are all executed server-side; the returned Page carries the opaque
// continuation tokens for follow-up searches.
func (c *Client) Search(ctx context.Context, search *Search) (*Page, error) {
	if search == nil {
		search = &Search{}
	}
	encoded, err := json.Marshal(search)
	if err != nil {
		return nil, wrapError("Search", "search", ErrEncode, err)
	}
	page, err := callValue[Page](ctx, c, "Search", "search", []any{json.RawMessage(encoded)})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// procSQL builds the dispatch statement for a procedure with positional
// $1..$n placeholders matching the parameter count.
func procSQL(proc string, paramCount int) string {
	placeholders := make([]string, paramCount)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("SELECT * FROM %s.%s(%s)", schema, proc, strings.Join(placeholders, ", "))
}

// logCall debug-logs a procedure invocation when a logger is configured
func (c *Client) logCall(proc string, paramCount int) {
	if c.logger != nil {
		c.logger.Debug("calling pgstac procedure",
			zap.String("procedure", proc),
			zap.Int("params", paramCount),
		)
	}
}

// scanRaw invokes a procedure and reads its single column as raw bytes.
// The three-way result: an error means the connection layer failed, nil
// bytes mean the value was SQL NULL, anything else is the value.
func (c *Client) scanRaw(ctx context.Context, op, proc string, params []any) ([]byte, error) {
	sql := procSQL(proc, len(params))
	c.logCall(proc, len(params))
	var raw []byte
	if err := c.conn.QueryRow(ctx, sql, params...).Scan(&raw); err != nil {
		return nil, wrapError(op, proc, classify(err), err)
	}
	return raw, nil
}

// callValue invokes a procedure and decodes its JSON result into T. A NULL
// result is an error here; procedures that may legitimately return NULL go
// through callOptional or callList instead.
func callValue[T any](ctx context.Context, c *Client, op, proc string, params []any) (T, error) {
	var value T
	raw, err := c.scanRaw(ctx, op, proc, params)
	if err != nil {
		return value, err
	}
	if raw == nil {
		return value, wrapError(op, proc, ErrQuery, errNullResult)
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		var zero T
		return zero, wrapError(op, proc, ErrDecode, err)
	}
	return value, nil
}

// callOptional invokes a procedure whose result may be SQL NULL, meaning
// "no such record". NULL becomes a nil pointer; a result that is present
// but fails to decode still surfaces as an error.
func callOptional[T any](ctx context.Context, c *Client, op, proc string, params []any) (*T, error) {
	raw, err := c.scanRaw(ctx, op, proc, params)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, wrapError(op, proc, ErrDecode, err)
	}
	return &value, nil
}

// callList invokes a procedure that returns a JSON array. The server may
// return SQL NULL instead of an empty array for "no rows"; both decode to
// an empty slice.
func callList[T any](ctx context.Context, c *Client, op, proc string, params []any) ([]T, error) {
	raw, err := c.scanRaw(ctx, op, proc, params)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []T{}, nil
	}
	var values []T
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, wrapError(op, proc, ErrDecode, err)
	}
	return values, nil
}

// callString invokes a procedure and reads its single column directly as
// text, without JSON decoding.
func (c *Client) callString(ctx context.Context, op, proc string, params []any) (string, error) {
	sql := procSQL(proc, len(params))
	c.logCall(proc, len(params))
	var value string
	if err := c.conn.QueryRow(ctx, sql, params...).Scan(&value); err != nil {
		return "", wrapError(op, proc, classify(err), err)
	}
	return value, nil
}

// callVoid invokes a procedure and discards its result. Connection-level
// failures, such as a uniqueness violation on create or a missing record on
// update, still propagate.
func (c *Client) callVoid(ctx context.Context, op, proc string, params []any) error {
	sql := procSQL(proc, len(params))
	c.logCall(proc, len(params))
	if _, err := c.conn.Exec(ctx, sql, params...); err != nil {
		return wrapError(op, proc, classify(err), err)
	}
	return nil
}

// callVoidJSON encodes value as the procedure's single JSON parameter and
// invokes it for side effects only.
func (c *Client) callVoidJSON(ctx context.Context, op, proc string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return wrapError(op, proc, ErrEncode, err)
	}
	return c.callVoid(ctx, op, proc, []any{json.RawMessage(encoded)})
}
