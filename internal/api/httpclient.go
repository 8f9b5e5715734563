package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nominapp/nominacli/internal/logging"
	"github.com/nominapp/nominacli/internal/models"
)

// HTTPClient talks plain HTTP+JSON to the Nomina backend.
//
// Every outbound request gets a fresh X-Request-Id, and an
// Authorization: Bearer header when (and only when) a token is set — a
// missing token never produces an empty header. A 401 on any authenticated
// call fires the registered hook before the error is returned, so session
// teardown happens regardless of which feature issued the call.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu             sync.RWMutex
	token          string
	onUnauthorized func()
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the given base URL. timeout bounds every
// request end to end.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// OnUnauthorized registers fn to run whenever an authenticated call returns
// 401. The login endpoint is exempt; its 401 means bad credentials.
func (c *HTTPClient) OnUnauthorized(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

func (c *HTTPClient) fireUnauthorized() {
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

// do performs one request and returns the raw response body. Error mapping:
// transport failure -> ErrUnavailable, 401 -> ErrBadCredentials (login) or
// ErrUnauthorized (+hook), other non-2xx -> *BusinessError when the body
// carries a message.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, path)
}

// send finishes header decoration and executes req. Shared by do and the
// multipart upload path.
func (c *HTTPClient) send(req *http.Request, path string) ([]byte, error) {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	if t := c.currentToken(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(req.Context(), "request failed", "method", req.Method, "path", path, "req_id", requestID, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if path == loginPath {
			return nil, ErrBadCredentials
		}
		c.log.Warn(req.Context(), "session rejected by backend", "path", path, "req_id", requestID)
		c.fireUnauthorized()
		return nil, ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
			return nil, &BusinessError{Status: resp.StatusCode, Message: env.Message}
		}
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, path)
	}

	return raw, nil
}

const loginPath = "/auth/login"

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	raw, err := c.do(ctx, http.MethodPost, loginPath, nil, creds)
	if err != nil {
		return nil, err
	}
	var u models.User
	if err := unwrap(raw, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Perfil(ctx context.Context) (*models.User, error) {
	raw, err := c.do(ctx, http.MethodGet, "/auth/perfil", nil, nil)
	if err != nil {
		return nil, err
	}
	var u models.User
	if err := unwrap(raw, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListNominas(ctx context.Context) ([]models.PayrollRecord, error) {
	return list[models.PayrollRecord](ctx, c, "/nominas", nil)
}

func (c *HTTPClient) GenerarNomina(ctx context.Context, req models.GenerarNominaRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/nominas/generar", nil, req)
	return err
}

func (c *HTTPClient) GetVoucher(ctx context.Context, idEmpleado int64, periodo string) (*models.Voucher, error) {
	q := url.Values{}
	q.Set("idEmpleado", strconv.FormatInt(idEmpleado, 10))
	q.Set("periodo", periodo)

	raw, err := c.do(ctx, http.MethodGet, "/nominas/voucher", q, nil)
	if err != nil {
		return nil, err
	}
	var v models.Voucher
	if err := unwrap(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *HTTPClient) ListEmpleados(ctx context.Context) ([]models.Empleado, error) {
	return list[models.Empleado](ctx, c, "/empleados", nil)
}

func (c *HTTPClient) CreateEmpleado(ctx context.Context, e models.Empleado) (*models.Empleado, error) {
	return create(ctx, c, "/empleados", e)
}

func (c *HTTPClient) UpdateEmpleado(ctx context.Context, e models.Empleado) error {
	_, err := c.do(ctx, http.MethodPut, "/empleados/"+strconv.FormatInt(e.ID, 10), nil, e)
	return err
}

func (c *HTTPClient) ToggleEmpleado(ctx context.Context, id int64) error {
	return c.toggle(ctx, "/empleados", id)
}

func (c *HTTPClient) ListDepartamentos(ctx context.Context) ([]models.Departamento, error) {
	return list[models.Departamento](ctx, c, "/departamentos", nil)
}

func (c *HTTPClient) CreateDepartamento(ctx context.Context, d models.Departamento) (*models.Departamento, error) {
	return create(ctx, c, "/departamentos", d)
}

func (c *HTTPClient) UpdateDepartamento(ctx context.Context, d models.Departamento) error {
	_, err := c.do(ctx, http.MethodPut, "/departamentos/"+strconv.FormatInt(d.ID, 10), nil, d)
	return err
}

func (c *HTTPClient) ToggleDepartamento(ctx context.Context, id int64) error {
	return c.toggle(ctx, "/departamentos", id)
}

func (c *HTTPClient) ListPuestos(ctx context.Context) ([]models.Puesto, error) {
	return list[models.Puesto](ctx, c, "/puestos", nil)
}

func (c *HTTPClient) CreatePuesto(ctx context.Context, p models.Puesto) (*models.Puesto, error) {
	return create(ctx, c, "/puestos", p)
}

func (c *HTTPClient) UpdatePuesto(ctx context.Context, p models.Puesto) error {
	_, err := c.do(ctx, http.MethodPut, "/puestos/"+strconv.FormatInt(p.ID, 10), nil, p)
	return err
}

func (c *HTTPClient) TogglePuesto(ctx context.Context, id int64) error {
	return c.toggle(ctx, "/puestos", id)
}

func (c *HTTPClient) ListUsuarios(ctx context.Context) ([]models.Usuario, error) {
	return list[models.Usuario](ctx, c, "/usuarios", nil)
}

func (c *HTTPClient) ToggleUsuario(ctx context.Context, id int64) error {
	return c.toggle(ctx, "/usuarios", id)
}

func (c *HTTPClient) ListDocumentos(ctx context.Context, idEmpleado int64) ([]models.Documento, error) {
	q := url.Values{}
	q.Set("idEmpleado", strconv.FormatInt(idEmpleado, 10))
	return list[models.Documento](ctx, c, "/documentos", q)
}

func (c *HTTPClient) ListTiposDocumento(ctx context.Context) ([]models.TipoDocumento, error) {
	return list[models.TipoDocumento](ctx, c, "/tipos-documento", nil)
}

func (c *HTTPClient) toggle(ctx context.Context, resource string, id int64) error {
	_, err := c.do(ctx, http.MethodPatch, resource+"/"+strconv.FormatInt(id, 10)+"/toggle", nil, nil)
	return err
}

// list fetches a collection endpoint tolerating both response shapes.
func list[T any](ctx context.Context, c *HTTPClient, path string, query url.Values) ([]T, error) {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := unwrap(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// create posts a new resource and decodes the created row from the response.
func create[T any](ctx context.Context, c *HTTPClient, path string, in T) (*T, error) {
	raw, err := c.do(ctx, http.MethodPost, path, nil, in)
	if err != nil {
		return nil, err
	}
	var out T
	if err := unwrap(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
