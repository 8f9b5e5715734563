package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nominapp/nominacli/internal/logging"
	"github.com/nominapp/nominacli/internal/models"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second, testLogger())
}

func TestHeaders_BearerOnlyWhenTokenPresent(t *testing.T) {
	var gotAuth, gotReqID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.ListNominas(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth, "no token must mean no Authorization header at all")
	require.NotEmpty(t, gotReqID)

	c.SetToken("abc")
	_, err = c.ListNominas(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer abc", gotAuth)
}

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":1,"nombre":"Ana","email":"ana@example.com","rol":"HR","token":"abc"}`))
	})

	u, err := c.Login(context.Background(), models.Credentials{Email: "ana@example.com", Password: "secreto"})
	require.NoError(t, err)
	require.Equal(t, "abc", u.Token)
	require.Equal(t, models.RoleHR, u.Rol)
}

func TestLogin_401IsBadCredentialsNotTeardown(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	hookFired := false
	c.OnUnauthorized(func() { hookFired = true })

	_, err := c.Login(context.Background(), models.Credentials{Email: "x", Password: "y"})
	require.ErrorIs(t, err, ErrBadCredentials)
	require.False(t, hookFired, "bad credentials must not tear the session down")
}

func TestAuthenticatedCall_401FiresHookOnce(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	fired := 0
	c.OnUnauthorized(func() { fired++ })
	c.SetToken("stale")

	_, err := c.ListEmpleados(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, 1, fired)
}

func TestBusinessError_CarriesBackendMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"message":"No se puede desactivar un puesto con empleados activos"}`))
	})

	err := c.TogglePuesto(context.Background(), 7)
	be, ok := AsBusiness(err)
	require.True(t, ok)
	require.Equal(t, http.StatusConflict, be.Status)
	require.Contains(t, be.Message, "empleados activos")
}

func TestTransportFailure_MapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := NewHTTPClient(srv.URL, time.Second, testLogger())
	srv.Close()

	_, err := c.ListNominas(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestListNominas_ToleratesBothShapes(t *testing.T) {
	record := `{"idEmpleado":1,"empleado":"Ana","departamento":"Ventas","puesto":"Analista",` +
		`"periodo":"Enero 2025","fechaInicio":"2025-01-01","fechaFin":"2025-01-31",` +
		`"salarioBase":"12000","totalBonos":"500","totalDeducciones":"1200","totalNeto":"11300","estado":"pagada"}`

	t.Run("bare array", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[` + record + `]`))
		})
		got, err := c.ListNominas(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "Enero 2025", got[0].Periodo)
	})

	t.Run("envelope", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":true,"message":"","data":[` + record + `]}`))
		})
		got, err := c.ListNominas(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.True(t, got[0].NetConsistent())
	})
}

func TestGetVoucher_QueryParams(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/nominas/voucher", r.URL.Path)
		require.Equal(t, "3", r.URL.Query().Get("idEmpleado"))
		require.Equal(t, "Enero 2025", r.URL.Query().Get("periodo"))
		_, _ = w.Write([]byte(`{"idEmpleado":3,"empleado":"Ana","periodo":"Enero 2025",` +
			`"salarioBase":"100","totalBonos":"10","totalDeducciones":"5","totalNeto":"105",` +
			`"lineas":[{"concepto":"Puntualidad","tipo":"bono","monto":"10"}]}`))
	})

	v, err := c.GetVoucher(context.Background(), 3, "Enero 2025")
	require.NoError(t, err)
	require.Len(t, v.Lineas, 1)
	require.Equal(t, models.LineBono, v.Lineas[0].Tipo)
}

func TestUploadDocumento_MultipartFields(t *testing.T) {
	var gotFields map[string]string
	var gotFile []byte

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = map[string]string{}
		for k := range r.MultipartForm.Value {
			gotFields[k] = r.FormValue(k)
		}
		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		gotFile, err = io.ReadAll(f)
		require.NoError(t, err)
		_, _ = w.Write([]byte(`{"success":true,"message":"ok","data":null}`))
	})
	c.SetToken("abc")

	err := c.UploadDocumento(context.Background(), models.DocumentoUpload{
		Contenido:         []byte("contenido-pdf"),
		IDEmpleado:        4,
		IDTipoDocumento:   2,
		NombreArchivo:     "contrato.pdf",
		UsuarioEjecutorID: 1,
		RolEjecutor:       models.RoleHR,
	})
	require.NoError(t, err)
	require.Equal(t, []byte("contenido-pdf"), gotFile)
	require.Equal(t, "4", gotFields["idEmpleado"])
	require.Equal(t, "2", gotFields["idTipoDocumento"])
	require.Equal(t, "contrato.pdf", gotFields["nombreArchivo"])
	require.Equal(t, "1", gotFields["usuarioEjecutorId"])
	require.Equal(t, "HR", gotFields["rolEjecutor"])
}
