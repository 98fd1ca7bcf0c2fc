package pgstac

import (
	"errors"
	"net"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	err := &Error{Op: "AddItem", Proc: "create_item", Kind: ErrQuery, Err: errors.New("duplicate key")}
	assert.Equal(t, "pgstac: AddItem failed for procedure=create_item: duplicate key", err.Error())

	err = &Error{Op: "Connect", Kind: ErrQuery, Err: errors.New("refused")}
	assert.Equal(t, "pgstac: Connect failed: refused", err.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := &Error{Op: "Search", Proc: "search", Kind: ErrDecode, Err: cause}
	assert.ErrorIs(t, err, cause)
}

func TestError_KindMatching(t *testing.T) {
	err := wrapError("Search", "search", ErrDecode, errors.New("bad json"))
	assert.True(t, IsDecode(err))
	assert.False(t, IsQuery(err))
	assert.False(t, IsEncode(err))
	assert.False(t, errors.Is(err, ErrUnknown))
}

func TestWrapError_NilPassthrough(t *testing.T) {
	assert.NoError(t, wrapError("Op", "proc", ErrQuery, nil))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"server error", &pgconn.PgError{Code: "23505"}, ErrQuery},
		{"no rows", pgx.ErrNoRows, ErrQuery},
		{"too many rows", pgx.ErrTooManyRows, ErrQuery},
		{"scan failure", pgx.ScanArgError{ColumnIndex: 0, Err: errors.New("cannot scan")}, ErrQuery},
		{"network failure", &net.DNSError{Err: "no such host", IsTimeout: false}, ErrQuery},
		{"wrapped server error", wrapped(&pgconn.PgError{Code: "P0001"}), ErrQuery},
		{"opaque failure", errors.New("boom"), ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func wrapped(err error) error {
	return &Error{Op: "op", Proc: "proc", Kind: ErrQuery, Err: err}
}
