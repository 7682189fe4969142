package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maboutik/maboutik-web/internal/application/dashboard"
	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/application/usecase"
	"github.com/maboutik/maboutik-web/internal/infrastructure/pdf"
	"github.com/maboutik/maboutik-web/internal/infrastructure/rest"
	apphttp "github.com/maboutik/maboutik-web/internal/interfaces/http"
	"github.com/maboutik/maboutik-web/pkg/config"
	"github.com/maboutik/maboutik-web/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Backend falso
// ──────────────────────────────────────────────────────────────────────────────

// fakeBackend emula los endpoints del backend que el gateway consume en
// estos tests. Todo lo demás responde 404 con detail.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/boutiques/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/commandes/"):
			io.WriteString(w, `[
				{"id":"c1","customerName":"Awa Diop","total":"15000","statut":"livree","date_commande":"2026-03-05T14:30:00Z",
				 "articles":[{"productName":"Savon","quantite":2,"prix":"2500"}]},
				{"id":"c2","first_name":"Moussa","last_name":"Ndiaye","total":"8000","statut":"en_attente","date_commande":"2026-03-06T09:00:00Z"}
			]`)
		case strings.HasSuffix(r.URL.Path, "/produits/"):
			io.WriteString(w, `{"results":[{"id":"p1","nom":"Savon de karité","prix":"2500","statut":"actif"}],"count":1}`)
		default:
			io.WriteString(w, `[{"id":"b1","nom":"Chez Awa","statut":"active"}]`)
		}
	})
	mux.HandleFunc("POST /api/boutiques/b1/produits/", func(w http.ResponseWriter, r *http.Request) {
		// El gateway manda multipart solo cuando hay imagen; si no, JSON.
		nom, prix := "", ""
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			nom, prix = r.FormValue("nom"), r.FormValue("prix")
		} else {
			var body struct {
				Nom  string `json:"nom"`
				Prix string `json:"prix"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			nom, prix = body.Nom, body.Prix
		}
		if nom == "doublon" {
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"nom": ["Ce nom existe déjà"]}`)
			return
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":"p9","nom":"`+nom+`","prix":"`+prix+`","statut":"actif"}`)
	})
	mux.HandleFunc("DELETE /api/commandes/c1/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"detail": "introuvable"}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// gatewayApp monta el gateway completo contra el backend falso.
func gatewayApp(t *testing.T, backendURL string) *fiber.App {
	t.Helper()
	log := logger.Nop()
	client := rest.NewClient(config.APIConfig{BaseURL: backendURL, TimeoutSeconds: 5, PageSize: 20}, log)

	boutiqueRepo := rest.NewBoutiqueRepository(client)
	productRepo := rest.NewProductRepository(client)
	catBoutiqueRepo := rest.NewCategoryBoutiqueRepository(client)
	catProduitRepo := rest.NewCategoryProduitRepository(client)
	orderRepo := rest.NewOrderRepository(client)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		BoutiqueViews:   usecase.NewBoutiqueViews(boutiqueRepo, catBoutiqueRepo, 20, log),
		ProduitViews:    usecase.NewProduitViews(productRepo, catProduitRepo, 20, log),
		CategoryViews:   usecase.NewCategoryViews(catBoutiqueRepo, catProduitRepo),
		OrderViews:      usecase.NewOrderViews(orderRepo, boutiqueRepo, pdf.NewMarotoReceiptGenerator(), 20, log),
		PaymentViews:    usecase.NewPaymentViews(rest.NewPaymentRepository(client), 20, log),
		UserViews:       usecase.NewUserViews(rest.NewUserRepository(client), 20),
		EngagementViews: usecase.NewEngagementViews(rest.NewCommentRepository(client), rest.NewMessageRepository(client), rest.NewNotificationRepository(client)),
		DashboardUC:     dashboard.NewUseCase(rest.NewStatsRepository(client), log),
		JWTSecret:       testJWTSecret,
		PublicURL:       "https://maboutik.test",
	})
	return app
}

func merchantRequest(t *testing.T, method, path string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+tokenForRole(t, "marchand"))
	return req
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado de commandes con filtros
// ──────────────────────────────────────────────────────────────────────────────

// El filtro de importes se aplica en el gateway (vista client-driven): el
// backend devuelve todo y solo las filas dentro del rango son visibles.
func TestCommandes_FiltreMontantConjonctif(t *testing.T) {
	app := gatewayApp(t, fakeBackend(t).URL)

	resp, err := app.Test(merchantRequest(t, http.MethodGet, "/api/boutique/commandes?montant_min=10000&montant_max=20000"), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.OrderListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Items, 1, "solo c1 (15000) cae en [10000, 20000]")
	assert.Equal(t, "c1", out.Items[0].ID)
	assert.Equal(t, 1, out.Meta.Count)
	assert.Equal(t, "Livrée", out.Items[0].BadgeLabel)
}

func TestCommandes_SansToken_Retourne401(t *testing.T) {
	app := gatewayApp(t, fakeBackend(t).URL)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/boutique/commandes", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Export CSV
// ──────────────────────────────────────────────────────────────────────────────

func TestCommandes_ExportCSV(t *testing.T) {
	app := gatewayApp(t, fakeBackend(t).URL)

	resp, err := app.Test(merchantRequest(t, http.MethodGet, "/api/boutique/commandes/export.csv?statut=livree"), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	body, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	require.Len(t, lines, 2, "cabecera + la única commande livrée")
	assert.Equal(t, "id,customerName,first_name,last_name,date,total,statut,articles", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "c1,Awa Diop"), "fila: %s", lines[1])
}

// ──────────────────────────────────────────────────────────────────────────────
// Formulario de producto
// ──────────────────────────────────────────────────────────────────────────────

// Campos requeridos vacíos: el gateway corta con 400 sin llamar al backend.
func TestProduits_ChampsRequisManquants(t *testing.T) {
	backendHits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendHits++
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	app := gatewayApp(t, srv.URL)

	req := merchantRequest(t, http.MethodPost, "/api/boutique/produits")
	req.Header.Set("Content-Type", "application/json")
	req.Body = io.NopCloser(strings.NewReader(`{"nom":"Savon"}`)) // sin prix ni categorie
	req.ContentLength = int64(len(`{"nom":"Savon"}`))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, backendHits, "ningún requerido vacío debe llegar al backend")
}

// El error de validación del backend vuelve campo a campo.
func TestProduits_ErreurDeValidationParChamp(t *testing.T) {
	app := gatewayApp(t, fakeBackend(t).URL)

	req := merchantRequest(t, http.MethodPost, "/api/boutique/produits")
	req.Header.Set("Content-Type", "application/json")
	req.Body = io.NopCloser(strings.NewReader(`{"nom":"doublon","prix":"2500","categorie":"cat1"}`))
	req.ContentLength = int64(len(`{"nom":"doublon","prix":"2500","categorie":"cat1"}`))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "VALIDATION", out.Code)
	require.Contains(t, out.Fields, "nom")
	assert.Equal(t, "Ce nom existe déjà", out.Fields["nom"][0])
}

func TestProduits_CreationReussie(t *testing.T) {
	app := gatewayApp(t, fakeBackend(t).URL)

	req := merchantRequest(t, http.MethodPost, "/api/boutique/produits")
	req.Header.Set("Content-Type", "application/json")
	req.Body = io.NopCloser(strings.NewReader(`{"nom":"Savon de karité","prix":"2500","categorie":"cat1"}`))
	req.ContentLength = int64(len(`{"nom":"Savon de karité","prix":"2500","categorie":"cat1"}`))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.ProduitResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "p9", out.ID)
	assert.Equal(t, "Savon de karité", out.Name)
	assert.NotEmpty(t, out.PriceLabel)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vitrine pública y consola admin
// ──────────────────────────────────────────────────────────────────────────────

func TestVitrine_AnnuaireSansToken(t *testing.T) {
	app := gatewayApp(t, fakeBackend(t).URL)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/boutiques", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.BoutiqueListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Chez Awa", out.Items[0].Name)
}

func TestAdmin_MarchandBloqueSurConsole(t *testing.T) {
	app := gatewayApp(t, fakeBackend(t).URL)
	resp, err := app.Test(merchantRequest(t, http.MethodGet, "/api/admin/boutiques"), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// La suppression confirmada responde 204; un ID inexistente mapea el 404 del
// backend tal cual.
func TestCommandes_Suppression(t *testing.T) {
	app := gatewayApp(t, fakeBackend(t).URL)

	resp, err := app.Test(merchantRequest(t, http.MethodDelete, "/api/boutique/commandes/c1"), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(merchantRequest(t, http.MethodDelete, "/api/boutique/commandes/fantome"), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSitemap_XMLPublique(t *testing.T) {
	app := gatewayApp(t, fakeBackend(t).URL)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/xml")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "<urlset")
	assert.Contains(t, string(body), "https://maboutik.test/boutiques/b1")
	assert.Contains(t, string(body), "https://maboutik.test/produits/p1")
}
