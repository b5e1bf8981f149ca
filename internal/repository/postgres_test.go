package repository

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestPgErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgUniqueViolation})
	fk := &pgconn.PgError{Code: pgForeignKeyViolation}
	check := &pgconn.PgError{Code: pgCheckViolation}
	badID := &pgconn.PgError{Code: pgInvalidText}
	plain := errors.New("boom")

	if !isUniqueViolation(unique) || isUniqueViolation(fk) || isUniqueViolation(plain) {
		t.Fatalf("unique violation misclassified")
	}
	if !isForeignKeyViolation(fk) || isForeignKeyViolation(unique) {
		t.Fatalf("foreign key violation misclassified")
	}
	if !isCheckViolation(check) {
		t.Fatalf("check violation misclassified")
	}
	if !isInvalidID(badID) || isInvalidID(plain) {
		t.Fatalf("invalid id misclassified")
	}
}

func TestEscapeLike(t *testing.T) {
	if got := escapeLike(`50%_off\`); got != `50\%\_off\\` {
		t.Fatalf("unexpected escape %q", got)
	}
}

func TestAppointmentsByPhone_InsertionOrder(t *testing.T) {
	_, order, ok := strings.Cut(appointmentsByPhone, "ORDER BY")
	if !ok || strings.TrimSpace(order) != "a.seq" {
		t.Fatalf("client history ordered by %q, want the insertion sequence", order)
	}
}
