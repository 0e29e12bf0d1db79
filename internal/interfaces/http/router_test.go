package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-tienda/internal/application/auth"
	"github.com/jhoicas/catalogo-tienda/internal/application/dto"
	"github.com/jhoicas/catalogo-tienda/internal/application/importer"
	"github.com/jhoicas/catalogo-tienda/internal/domain"
	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
	"github.com/jhoicas/catalogo-tienda/internal/domain/repository"
	"github.com/jhoicas/catalogo-tienda/internal/infrastructure/filestore"
	"github.com/jhoicas/catalogo-tienda/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/catalogo-tienda/internal/interfaces/http"
)

type failingImporter struct{ err error }

func (f failingImporter) Run(context.Context, importer.Options) (*importer.Report, error) {
	return nil, f.err
}

func buildRouter(t *testing.T, imp apphttp.Importer) (*fiber.App, string) {
	t.Helper()
	store := memory.NewStore()
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	dir := t.TempDir()

	if imp == nil {
		imp = importer.NewOrchestrator(store, hasher, filestore.Discard{}, nil)
	}

	ctx := context.Background()
	repos := store.Repositories()
	role, _, err := repos.Roles.FindOrCreate(ctx, entity.RoleAdmin)
	require.NoError(t, err)
	hash, err := hasher.Hash("2L6KZG")
	require.NoError(t, err)
	_, _, err = repos.Users.Save(ctx, &entity.User{
		Username: "admin@mail.ru", FullName: "Ивлев Иван", RoleID: role.ID, Role: role.Name, PasswordHash: hash,
	}, repository.CreateIfAbsent)
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        auth.NewAuthUseCase(repos.Users, hasher, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 5, Issuer: testIssuer}),
		Importer:      imp,
		ImportOptions: importer.Options{Path: dir},
		JWTSecret:     testJWTSecret,
	})
	return app, dir
}

func post(t *testing.T, app *fiber.App, path, authHeader, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestLoginEImportacion(t *testing.T) {
	app, _ := buildRouter(t, nil)

	resp := post(t, app, "/api/auth/login", "", `{"username":"admin@mail.ru","password":"2L6KZG"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	assert.Equal(t, "admin", login.User.Role)

	resp = post(t, app, "/api/imports", fmt.Sprintf("Bearer %s", login.Token), "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var report dto.ImportResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.True(t, report.Success)
	require.Len(t, report.Stages, 4)
	for _, s := range report.Stages {
		assert.True(t, s.SkippedFile, s.Sheet)
	}
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app, _ := buildRouter(t, nil)

	resp := post(t, app, "/api/auth/login", "", `{"username":"admin@mail.ru","password":"mala"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = post(t, app, "/api/auth/login", "", `{"username":""}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestImportacion_RequiereRol(t *testing.T) {
	app, _ := buildRouter(t, nil)

	resp := post(t, app, "/api/imports", "", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = post(t, app, "/api/imports", tokenForRole(t, "client"), "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestImportacion_DirectorioInvalido(t *testing.T) {
	app, _ := buildRouter(t, failingImporter{err: fmt.Errorf("ruta: %w", domain.ErrInvalidInput)})

	resp := post(t, app, "/api/imports", tokenForRole(t, "manager"), "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
