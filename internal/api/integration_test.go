package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/campus-project/campus-server/internal/api/handlers"
	"github.com/campus-project/campus-server/internal/auth"
	"github.com/campus-project/campus-server/internal/cache"
	"github.com/campus-project/campus-server/internal/database"
	"github.com/campus-project/campus-server/internal/database/queries"
	"github.com/campus-project/campus-server/internal/models"
)

const testSecret = "test-secret"

type testEnv struct {
	app    *httptest.Server
	db     *database.DB
	users  *queries.UserQueries
	tokens *auth.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
		return nil
	}
	db, err := database.Connect(url)
	if err != nil {
		t.Skipf("db unavailable: %v", err)
		return nil
	}
	if err := db.Migrate(filepath.Join("..", "database", "migrations")); err != nil {
		t.Fatalf("migrate error: %v", err)
	}

	userQueries := queries.NewUserQueries(db.DB)
	tokens := auth.NewTokenService(testSecret, time.Hour)
	roleCache := cache.NewRoleCache(userQueries, nil, time.Second)

	router := NewRouter(RouterDeps{
		Tokens:     tokens,
		Roles:      roleCache,
		Auth:       handlers.NewAuthHandler(userQueries, tokens),
		Users:      handlers.NewUserHandler(userQueries, roleCache),
		Lugares:    handlers.NewLugarHandler(queries.NewLugarQueries(db.DB)),
		Categorias: handlers.NewCategoriaHandler(queries.NewCategoriaQueries(db.DB)),
		Edificios:  handlers.NewEdificioHandler(queries.NewEdificioQueries(db.DB)),
		Bloques:    handlers.NewBloqueHandler(queries.NewBloqueQueries(db.DB)),
		Evaluacion: handlers.NewEvaluacionHandler(queries.NewEvaluacionQueries(db.DB)),
		Wifi:       handlers.NewWifiHandler(queries.NewWifiQueries(db.DB)),
		StaticDir:  t.TempDir(),
	})

	app := httptest.NewServer(router)
	t.Cleanup(func() {
		app.Close()
		db.Close()
	})

	return &testEnv{app: app, db: db, users: userQueries, tokens: tokens}
}

func (e *testEnv) createAdmin(t *testing.T) string {
	t.Helper()

	hash, err := auth.HashPassword("admin-pass")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	suffix := time.Now().UnixNano()
	admin := &models.User{
		Nombre:   "Admin",
		Apellido: "Test",
		Email:    fmt.Sprintf("admin.%d@x.com", suffix),
		Cedula:   fmt.Sprintf("adm-%d", suffix),
		Password: hash,
		Rol:      models.RoleAdmin,
	}
	if err := e.users.CreateUser(admin); err != nil {
		t.Fatalf("create admin error: %v", err)
	}

	token, err := e.tokens.Issue(admin.ID, admin.Email)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	return token
}

func doReq(t *testing.T, method, url, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode error: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("http error: %v", err)
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	env := newTestEnv(t)
	if env == nil {
		return
	}

	suffix := time.Now().UnixNano()
	email := fmt.Sprintf("ana.%d@x.com", suffix)
	cedula := fmt.Sprintf("ced-%d", suffix)

	registerBody := map[string]interface{}{
		"nombre":   "Ana",
		"apellido": "Ruiz",
		"email":    email,
		"cedula":   cedula,
		"password": "secret1",
	}

	resp, body := doReq(t, http.MethodPost, env.app.URL+"/register", "", registerBody)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	registerToken, _ := body["token"].(string)
	if registerToken == "" {
		t.Fatalf("expected a token in the register response")
	}
	usuario, _ := body["usuario"].(map[string]interface{})
	if usuario["rol"] != "estudiante" {
		t.Fatalf("expected default rol estudiante, got %v", usuario["rol"])
	}
	if _, leaked := usuario["password"]; leaked {
		t.Fatalf("password must not be echoed")
	}

	// A second registration with the same email must conflict.
	resp, _ = doReq(t, http.MethodPost, env.app.URL+"/register", "", registerBody)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", resp.StatusCode)
	}

	// Missing fields fail with 400.
	resp, _ = doReq(t, http.MethodPost, env.app.URL+"/register", "", map[string]interface{}{
		"nombre": "Ana", "email": fmt.Sprintf("other.%d@x.com", suffix),
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", resp.StatusCode)
	}

	// Login with the right password.
	resp, body = doReq(t, http.MethodPost, env.app.URL+"/api/login", "", map[string]interface{}{
		"email": email, "password": "secret1",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	loginToken, _ := body["token"].(string)
	if loginToken == "" || loginToken == registerToken {
		t.Fatalf("expected a fresh login token")
	}

	// Wrong password and unknown email answer identically.
	resp, wrongPass := doReq(t, http.MethodPost, env.app.URL+"/api/login", "", map[string]interface{}{
		"email": email, "password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", resp.StatusCode)
	}
	resp, noUser := doReq(t, http.MethodPost, env.app.URL+"/api/login", "", map[string]interface{}{
		"email": fmt.Sprintf("ghost.%d@x.com", suffix), "password": "secret1",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", resp.StatusCode)
	}
	if wrongPass["error"] != noUser["error"] {
		t.Fatalf("login failures must be indistinguishable: %v vs %v", wrongPass["error"], noUser["error"])
	}

	// Profile with the login token.
	resp, body = doReq(t, http.MethodGet, env.app.URL+"/api/profile", loginToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["nombre"] != "Ana" || body["apellido"] != "Ruiz" || body["email"] != email || body["rol"] != "estudiante" {
		t.Fatalf("unexpected profile: %v", body)
	}

	// Verify-token confirms the user still exists.
	resp, body = doReq(t, http.MethodGet, env.app.URL+"/api/verify-token", loginToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["valid"] != true {
		t.Fatalf("expected valid token response, got %v", body)
	}

	// Logout is decorative and always succeeds.
	resp, _ = doReq(t, http.MethodPost, env.app.URL+"/api/logout", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestVerifyTokenRejectsDeletedUser(t *testing.T) {
	env := newTestEnv(t)
	if env == nil {
		return
	}

	suffix := time.Now().UnixNano()
	hash, _ := auth.HashPassword("secret1")
	user := &models.User{
		Nombre:   "Gone",
		Apellido: "Soon",
		Email:    fmt.Sprintf("gone.%d@x.com", suffix),
		Cedula:   fmt.Sprintf("gone-%d", suffix),
		Password: hash,
		Rol:      models.RoleStudent,
	}
	if err := env.users.CreateUser(user); err != nil {
		t.Fatalf("create user error: %v", err)
	}
	token, err := env.tokens.Issue(user.ID, user.Email)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	if err := env.users.DeleteUser(user.ID); err != nil {
		t.Fatalf("delete user error: %v", err)
	}

	// Signature is still valid; the row re-fetch must reject it.
	resp, _ := doReq(t, http.MethodGet, env.app.URL+"/api/verify-token", token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for deleted user, got %d", resp.StatusCode)
	}
	resp, _ = doReq(t, http.MethodGet, env.app.URL+"/api/profile", token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for deleted user, got %d", resp.StatusCode)
	}
}

func TestLugarCrud(t *testing.T) {
	env := newTestEnv(t)
	if env == nil {
		return
	}
	adminToken := env.createAdmin(t)

	resp, body := doReq(t, http.MethodPost, env.app.URL+"/api/lugar", adminToken, map[string]interface{}{
		"nombre": "Campus Central", "fecha_creacion": "2020-05-10",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	lugar, _ := body["lugar"].(map[string]interface{})
	id := int(lugar["id"].(float64))

	// Update overwrites both fields and the read-back is exact.
	resp, body = doReq(t, http.MethodPut, fmt.Sprintf("%s/api/lugar/%d", env.app.URL, id), adminToken, map[string]interface{}{
		"nombre": "Campus Norte", "fecha_creacion": "2024-01-01",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	updated, _ := body["lugar"].(map[string]interface{})
	if updated["nombre"] != "Campus Norte" || updated["fecha_creacion"] != "2024-01-01" {
		t.Fatalf("unexpected update result: %v", updated)
	}
	if int(updated["id"].(float64)) != id {
		t.Fatalf("id must not change on update")
	}

	// Missing required fields fail with 400.
	resp, _ = doReq(t, http.MethodPut, fmt.Sprintf("%s/api/lugar/%d", env.app.URL, id), adminToken, map[string]interface{}{
		"nombre": "",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	// Unknown ids are 404 for update and delete.
	resp, _ = doReq(t, http.MethodPut, env.app.URL+"/api/lugar/999999", adminToken, map[string]interface{}{
		"nombre": "X", "fecha_creacion": "2024-01-01",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	resp, _ = doReq(t, http.MethodDelete, env.app.URL+"/api/lugar/999999", adminToken, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	resp, _ = doReq(t, http.MethodDelete, fmt.Sprintf("%s/api/lugar/%d", env.app.URL, id), adminToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAdminGateOnMutations(t *testing.T) {
	env := newTestEnv(t)
	if env == nil {
		return
	}

	// Register a student and try an admin-only mutation.
	suffix := time.Now().UnixNano()
	resp, body := doReq(t, http.MethodPost, env.app.URL+"/register", "", map[string]interface{}{
		"nombre": "Luz", "apellido": "Mora",
		"email":  fmt.Sprintf("luz.%d@x.com", suffix),
		"cedula": fmt.Sprintf("luz-%d", suffix), "password": "secret1",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	usuario, _ := body["usuario"].(map[string]interface{})
	studentID := int(usuario["id"].(float64))
	studentToken, err := env.tokens.Issue(studentID, usuario["email"].(string))
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	before, err := queries.NewLugarQueries(env.db.DB).ListLugares()
	if err != nil {
		t.Fatalf("list error: %v", err)
	}

	resp, _ = doReq(t, http.MethodPost, env.app.URL+"/api/lugar", studentToken, map[string]interface{}{
		"nombre": "No permitido", "fecha_creacion": "2024-01-01",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for student, got %d", resp.StatusCode)
	}

	// No token at all is 401.
	resp, _ = doReq(t, http.MethodPost, env.app.URL+"/api/lugar", "", map[string]interface{}{
		"nombre": "No permitido", "fecha_creacion": "2024-01-01",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	after, err := queries.NewLugarQueries(env.db.DB).ListLugares()
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("rejected mutation must not change the store")
	}
}

func TestLaboratoriosUnknownBloqueIsEmptyList(t *testing.T) {
	env := newTestEnv(t)
	if env == nil {
		return
	}

	resp, err := http.Get(env.app.URL + "/api/laboratorios?bloque_id=999999")
	if err != nil {
		t.Fatalf("http error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var labs []string
	if err := json.NewDecoder(resp.Body).Decode(&labs); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(labs) != 0 {
		t.Fatalf("expected empty list, got %v", labs)
	}
}

// createReferenceChain creates a lugar, a categoria, an edificio in both and
// a bloque in that edificio, returning the four ids.
func createReferenceChain(t *testing.T, env *testEnv, adminToken string) (lugarID, categoriaID, edificioID, bloqueID int) {
	t.Helper()

	resp, body := doReq(t, http.MethodPost, env.app.URL+"/api/lugar", adminToken, map[string]interface{}{
		"nombre": "Sede Test", "fecha_creacion": "2024-03-01",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create lugar: expected 201, got %d", resp.StatusCode)
	}
	lugar, _ := body["lugar"].(map[string]interface{})
	lugarID = int(lugar["id"].(float64))

	resp, body = doReq(t, http.MethodPost, env.app.URL+"/api/categorias", adminToken, map[string]interface{}{
		"nombre": "Aulas",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create categoria: expected 201, got %d", resp.StatusCode)
	}
	categoria, _ := body["categoria"].(map[string]interface{})
	categoriaID = int(categoria["id"].(float64))

	resp, body = doReq(t, http.MethodPost, env.app.URL+"/api/edificios", adminToken, map[string]interface{}{
		"nombre": "Edificio A", "lugar_id": lugarID, "categoria_id": categoriaID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create edificio: expected 201, got %d", resp.StatusCode)
	}
	edificio, _ := body["edificio"].(map[string]interface{})
	edificioID = int(edificio["id"].(float64))

	resp, body = doReq(t, http.MethodPost, env.app.URL+"/api/bloques", adminToken, map[string]interface{}{
		"nombre": "Bloque 1", "edificios_id": edificioID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create bloque: expected 201, got %d", resp.StatusCode)
	}
	bloque, _ := body["bloque"].(map[string]interface{})
	bloqueID = int(bloque["id"].(float64))

	return lugarID, categoriaID, edificioID, bloqueID
}

func getJSONList(t *testing.T, url string) []map[string]interface{} {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("http error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d", url, resp.StatusCode)
	}
	var list []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return list
}

// The evaluaciones table carries no foreign keys, so a row referencing a
// nonexistent bloque can be created. The enriched listing must hide it while
// the row itself stays in the table.
func TestEvaluacionesListingOmitsDanglingReferences(t *testing.T) {
	env := newTestEnv(t)
	if env == nil {
		return
	}
	adminToken := env.createAdmin(t)
	lugarID, categoriaID, edificioID, bloqueID := createReferenceChain(t, env, adminToken)

	resp, body := doReq(t, http.MethodPost, env.app.URL+"/api/evaluaciones", adminToken, map[string]interface{}{
		"nombre": "Parcial 1", "lugar_id": lugarID, "categoria_id": categoriaID,
		"edificio_id": edificioID, "bloque_id": bloqueID,
		"fecha_inicio": "2024-06-01", "fecha_fin": "2024-06-02", "horarios": "08:00-10:00",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create evaluacion: expected 201, got %d", resp.StatusCode)
	}
	validID := int(body["id"].(float64))

	resp, body = doReq(t, http.MethodPost, env.app.URL+"/api/evaluaciones", adminToken, map[string]interface{}{
		"nombre": "Parcial fantasma", "lugar_id": lugarID, "categoria_id": categoriaID,
		"edificio_id": edificioID, "bloque_id": 999999,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create dangling evaluacion: expected 201, got %d", resp.StatusCode)
	}
	danglingID := int(body["id"].(float64))

	var count int
	if err := env.db.Get(&count, `SELECT COUNT(*) FROM evaluaciones WHERE id = $1`, danglingID); err != nil {
		t.Fatalf("count error: %v", err)
	}
	if count != 1 {
		t.Fatalf("dangling row must exist in the table, found %d", count)
	}

	seen := map[int]bool{}
	for _, ev := range getJSONList(t, env.app.URL+"/api/evaluaciones") {
		seen[int(ev["id"].(float64))] = true
	}
	if !seen[validID] {
		t.Fatalf("evaluacion %d with intact references must be listed", validID)
	}
	if seen[danglingID] {
		t.Fatalf("evaluacion %d with a dangling bloque_id must not be listed", danglingID)
	}
}

func TestDeleteUnknownIDIsNotFoundAcrossResources(t *testing.T) {
	env := newTestEnv(t)
	if env == nil {
		return
	}
	adminToken := env.createAdmin(t)

	paths := []string{
		"/api/usuarios/999999",
		"/api/lugar/999999",
		"/api/categorias/999999",
		"/api/edificios/999999",
		"/api/bloques/999999",
		"/api/evaluaciones/999999",
		"/api/wifi/999999",
	}
	for _, path := range paths {
		resp, _ := doReq(t, http.MethodDelete, env.app.URL+path, adminToken, nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("DELETE %s: expected 404, got %d", path, resp.StatusCode)
		}
	}
}

func TestWifiReturnsFirstRowWhenManyExist(t *testing.T) {
	env := newTestEnv(t)
	if env == nil {
		return
	}
	adminToken := env.createAdmin(t)

	suffix := time.Now().UnixNano()
	for i := 0; i < 2; i++ {
		resp, _ := doReq(t, http.MethodPost, env.app.URL+"/api/wifi", adminToken, map[string]interface{}{
			"nombre": fmt.Sprintf("red-%d-%d", suffix, i), "password": "clave123",
		})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create wifi: expected 201, got %d", resp.StatusCode)
		}
	}

	var minID int
	if err := env.db.Get(&minID, `SELECT MIN(id) FROM wifi`); err != nil {
		t.Fatalf("min id error: %v", err)
	}

	resp, body := doReq(t, http.MethodGet, env.app.URL+"/api/wifi", adminToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := int(body["id"].(float64)); got != minID {
		t.Fatalf("expected the first stored row (id %d), got id %d", minID, got)
	}
}

func TestWifiRequiresAuthentication(t *testing.T) {
	env := newTestEnv(t)
	if env == nil {
		return
	}

	resp, _ := doReq(t, http.MethodGet, env.app.URL+"/api/wifi", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
}
