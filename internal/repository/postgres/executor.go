package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// DBExecutor is the subset of *sql.DB and *sql.Tx the repositories need, so
// the same implementation can run standalone or inside a transaction.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Public identifiers are prefixed database integers: s<N> for students,
// comp-<N> for companies, grp-<N> for groups, inv-<N> for members.

func studentIDToInt(stringID string) (int, error) {
	idStr := strings.TrimPrefix(stringID, "s")
	return strconv.Atoi(idStr)
}

func intToStudentID(id int) string {
	return fmt.Sprintf("s%d", id)
}

func companyIDToInt(stringID string) (int, error) {
	idStr := strings.TrimPrefix(stringID, "comp-")
	return strconv.Atoi(idStr)
}

func intToCompanyID(id int) string {
	return fmt.Sprintf("comp-%d", id)
}

func groupIDToInt(stringID string) (int, error) {
	idStr := strings.TrimPrefix(stringID, "grp-")
	return strconv.Atoi(idStr)
}

func intToGroupID(id int) string {
	return fmt.Sprintf("grp-%d", id)
}

func memberIDToInt(stringID string) (int, error) {
	idStr := strings.TrimPrefix(stringID, "inv-")
	return strconv.Atoi(idStr)
}

func intToMemberID(id int) string {
	return fmt.Sprintf("inv-%d", id)
}
