package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

const testQueryTimeout = 2 * time.Minute

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestUserPostgresRepository_GetAccountByEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserPostgresRepository(db, testQueryTimeout)

	rows := sqlmock.NewRows([]string{
		"email_login", "firebase_uid", "nombre_completo", "cliente_rol", "rol_id", "nombre_rol",
		"puede_ver_cobertura", "puede_ver_encuestas", "puede_enviar_mensajes", "puede_ver_empresas",
		"puede_ver_metricas_globales", "puede_ver_trabajadores", "puede_ver_mensajes_recibidos",
		"es_admin", "ver_todas_instalaciones", "usuario_activo",
	}).AddRow(
		"cli@acme.cl", "uid-1", "Cliente Uno", "ACME", "CLIENTE", "Cliente",
		true, true, true, false,
		false, false, false,
		false, false, true,
	)

	mock.ExpectQuery("FROM v_permisos_usuarios").
		WithArgs("cli@acme.cl").
		WillReturnRows(rows)

	account, err := repo.GetAccountByEmail(context.Background(), "cli@acme.cl")
	require.NoError(t, err)
	assert.Equal(t, "cli@acme.cl", account.Email)
	assert.Equal(t, "uid-1", account.StoredUID)
	assert.Equal(t, "CLIENTE", account.RoleID)
	assert.True(t, account.Permissions.ViewCoverage)
	assert.False(t, account.Permissions.Admin)
	assert.True(t, account.Active)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgresRepository_GetAccountByEmailNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserPostgresRepository(db, testQueryTimeout)

	mock.ExpectQuery("FROM v_permisos_usuarios").
		WithArgs("nadie@acme.cl").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetAccountByEmail(context.Background(), "nadie@acme.cl")
	assert.ErrorIs(t, err, interfaces.ErrAccountNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgresRepository_UpdateStoredUID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserPostgresRepository(db, testQueryTimeout)

	mock.ExpectExec("UPDATE usuarios_app").
		WithArgs("cli@acme.cl", "uid-new").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStoredUID(context.Background(), "cli@acme.cl", "uid-new")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgresRepository_GetAccountByEmailTimeout(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserPostgresRepository(db, testQueryTimeout)

	mock.ExpectQuery("FROM v_permisos_usuarios").
		WithArgs("cli@acme.cl").
		WillReturnError(context.DeadlineExceeded)

	_, err := repo.GetAccountByEmail(context.Background(), "cli@acme.cl")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgresRepository_DeviceTokensForInstallation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserPostgresRepository(db, testQueryTimeout)

	rows := sqlmock.NewRows([]string{"fcm_token"}).
		AddRow("tok-1").
		AddRow("tok-2")

	mock.ExpectQuery("SELECT DISTINCT u.fcm_token").
		WithArgs("INST-A", "cli@acme.cl").
		WillReturnRows(rows)

	tokens, err := repo.DeviceTokensForInstallation(context.Background(), "INST-A", "cli@acme.cl")
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-1", "tok-2"}, tokens)
	require.NoError(t, mock.ExpectationsWereMet())
}
