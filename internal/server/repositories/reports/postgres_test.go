package reports

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/fieldsync/internal/common"
	"github.com/dmitrijs2005/fieldsync/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

var (
	captured  = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	committed = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
)

const bodyJSON = `{"observations":[{"id":"o1","category":"","severity":"info","text":"t","attachment":{"url":"https://x/notes/a.png"}}],"measurements":null,"actions":null}`

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rep := &models.Report{
		ID: "r1", SiteID: "s1", CapturedAt: captured, ClientRef: "local-1", DeviceID: "dev-1",
		Body: models.ReportBody{Observations: []models.Observation{
			{ID: "o1", Severity: "info", Text: "t", Attachment: &models.AttachmentRef{URL: "https://x/notes/a.png"}},
		}},
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO reports (id, site_id, captured_at, body, client_ref, device_id)`)).
		WithArgs("r1", "s1", captured, []byte(bodyJSON), "local-1", "dev-1").
		WillReturnRows(sqlmock.NewRows([]string{"committed_at"}).AddRow(committed))

	got, err := repo.Create(context.Background(), rep)
	require.NoError(t, err)
	assert.Equal(t, committed, got.CommittedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`INSERT INTO reports`).WillReturnError(errors.New("db is down"))

	_, err := repo.Create(context.Background(), &models.Report{ID: "r1"})
	require.Error(t, err)
	assert.Regexp(t, `db error: .*db is down`, err.Error())
}

func reportRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "site_id", "captured_at", "body", "client_ref", "device_id", "committed_at"})
}

func TestListBySite(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT id, site_id, captured_at, body, client_ref, device_id, committed_at FROM reports WHERE site_id = \$1 ORDER BY`).
		WithArgs("s1").
		WillReturnRows(reportRows().
			AddRow("r2", "s1", captured.Add(time.Hour), []byte(`{"observations":[],"measurements":[],"actions":[]}`), "", "", committed).
			AddRow("r1", "s1", captured, []byte(bodyJSON), "local-1", "dev-1", committed))

	got, err := repo.ListBySite(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r2", got[0].ID)
	require.Len(t, got[1].Body.Observations, 1)
	assert.Equal(t, "https://x/notes/a.png", got[1].Body.Observations[0].Attachment.URL)
	assert.Equal(t, "dev-1", got[1].DeviceID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListBySite_Empty(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM reports WHERE site_id`).WithArgs("none").WillReturnRows(reportRows())

	got, err := repo.ListBySite(context.Background(), "none")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListBySite_BadBody(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM reports WHERE site_id`).
		WillReturnRows(reportRows().AddRow("r1", "s1", captured, []byte(`{`), "", "", committed))

	_, err := repo.ListBySite(context.Background(), "s1")
	require.ErrorContains(t, err, "decode report body")
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM reports WHERE id = \$1`).WithArgs("r1").
		WillReturnRows(reportRows().AddRow("r1", "s1", captured, []byte(bodyJSON), "l", "d", committed))
	mock.ExpectQuery(`FROM reports WHERE id = \$1`).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	got, err := repo.Get(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.SiteID)

	_, err = repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(`DELETE FROM reports WHERE id = \$1`).WithArgs("r1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM reports WHERE id = \$1`).WithArgs("r2").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM reports WHERE id = \$1`).WithArgs("r3").WillReturnError(errors.New("boom"))

	require.NoError(t, repo.Delete(context.Background(), "r1"))
	require.ErrorIs(t, repo.Delete(context.Background(), "r2"), common.ErrNotFound)
	err := repo.Delete(context.Background(), "r3")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
