package pg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify_Nil(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetriable, classifier.Classify(nil))
}

func TestPostgresErrorClassifier_Classify_PlainError(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetriable, classifier.Classify(errors.New("custom error")))
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		code string
		want ErrorClassification
	}{
		// Класс 08
		{"08000", Retriable}, {"08001", Retriable}, {"08003", Retriable},
		{"08004", Retriable}, {"08006", Retriable}, {"08007", Retriable},
		// Класс 40
		{"40000", Retriable}, {"40001", Retriable}, {"40P01", Retriable},
		// Класс 57
		{"57P03", Retriable},
		// Классы 22, 23, 42
		{"22000", NonRetriable}, {ErrIsExistCode, NonRetriable}, {"23502", NonRetriable},
		{"42601", NonRetriable}, {"42P01", NonRetriable},
		// несуществующие коды
		{"00000", NonRetriable}, {"ABCDE", NonRetriable},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(&pgconn.PgError{Code: tt.code}))
		})
	}
}

func TestPostgresErrorClassifier_Classify_Wrapped(t *testing.T) {
	classifier := NewPostgresErrorClassifier()
	err := fmt.Errorf("record upsert: %w", &pgconn.PgError{Code: "08006"})

	assert.Equal(t, Retriable, classifier.Classify(err))
}
