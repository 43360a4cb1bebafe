package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-accounts/internal/domain/account"
)

func TestTranslate(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "record not found", in: fmt.Errorf("first: %w", gorm.ErrRecordNotFound), want: domain.ErrNotFound},
		{name: "gorm duplicated key", in: gorm.ErrDuplicatedKey, want: domain.ErrEmailTaken},
		{
			name: "pg unique violation",
			in:   fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}),
			want: domain.ErrEmailTaken,
		},
		{name: "other pg error", in: &pgconn.PgError{Code: "23503"}},
		{name: "passthrough", in: boom, want: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.in)
			switch {
			case tt.want == nil && tt.in == nil:
				assert.NoError(t, got)
			case tt.want == nil:
				assert.Equal(t, tt.in, got)
			default:
				assert.ErrorIs(t, got, tt.want)
			}
		})
	}
}
