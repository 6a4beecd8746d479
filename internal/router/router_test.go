package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"zoo-records/internal/adapters/storage/memory"
	"zoo-records/internal/platform/httpclient"
	"zoo-records/internal/router"
)

type animalDTO struct {
	ID                  int    `json:"id"`
	Species             string `json:"species"`
	Age                 int    `json:"age"`
	Gender              string `json:"gender"`
	SpecialRequirements string `json:"special_requirements"`
}

type employeeDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	Schedule    any    `json:"schedule"`
}

func TestHTTP_EndToEnd_Animals(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Alta con defaults
	var lion animalDTO
	{
		st, body := doReq(t, ts.URL, "POST", "/animals", map[string]any{"species": "Lion"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", st, string(body))
		}
		mustUnmarshal(t, body, &lion)
		want := animalDTO{ID: 1, Species: "Lion", Age: 0, Gender: "Unknown", SpecialRequirements: ""}
		if lion != want {
			t.Fatalf("got %+v want %+v", lion, want)
		}
	}

	// 2) Duplicado => 409 y la colección no cambia
	{
		st, body := doReq(t, ts.URL, "POST", "/animals", map[string]any{"species": "Lion", "age": 9})
		if st != http.StatusConflict {
			t.Fatalf("expected 409, got %d body=%s", st, string(body))
		}
		if msg := errorMessage(t, body); msg != `animal with species "Lion" already exists` {
			t.Fatalf("unexpected error message %q", msg)
		}
		if n := len(listAnimals(t, ts.URL)); n != 1 {
			t.Fatalf("expected 1 animal after duplicate, got %d", n)
		}
	}

	// 3) Segundo animal
	var tiger animalDTO
	{
		st, body := doReq(t, ts.URL, "POST", "/animals", map[string]any{"species": "Tiger", "age": 3})
		if st != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", st, string(body))
		}
		mustUnmarshal(t, body, &tiger)
		if tiger.ID != 2 || tiger.Age != 3 {
			t.Fatalf("unexpected tiger %+v", tiger)
		}
	}

	// 4) Update parcial
	{
		st, body := doReq(t, ts.URL, "PUT", "/animals/2", map[string]any{"special_requirements": "shade"})
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", st, string(body))
		}
		mustUnmarshal(t, body, &tiger)
		want := animalDTO{ID: 2, Species: "Tiger", Age: 3, Gender: "Unknown", SpecialRequirements: "shade"}
		if tiger != want {
			t.Fatalf("got %+v want %+v", tiger, want)
		}
	}

	// 5) Delete
	{
		st, body := doReq(t, ts.URL, "DELETE", "/animals/1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", st, string(body))
		}
		var res map[string]string
		mustUnmarshal(t, body, &res)
		if res["result"] != "Animal deleted" {
			t.Fatalf("unexpected delete result %v", res)
		}
	}

	items := listAnimals(t, ts.URL)
	if len(items) != 1 || items[0] != tiger {
		t.Fatalf("expected only tiger, got %+v", items)
	}

	// 6) Ya no existe
	{
		st, body := doReq(t, ts.URL, "GET", "/animals/1", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404, got %d body=%s", st, string(body))
		}
		if msg := errorMessage(t, body); msg != "animal 1 not found" {
			t.Fatalf("unexpected error message %q", msg)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/animals/1", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 on second delete, got %d", st)
		}
	}

	// 7) El id borrado no se reutiliza
	{
		st, body := doReq(t, ts.URL, "POST", "/animals", map[string]any{"species": "Bear"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", st, string(body))
		}
		var bear animalDTO
		mustUnmarshal(t, body, &bear)
		if bear.ID != 3 {
			t.Fatalf("expected id 3, got %d", bear.ID)
		}
	}
}

func TestHTTP_Animals_BadRequests(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	createAnimal(t, ts.URL, "Lion")

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"post without species", "POST", "/animals", `{"age": 2}`, http.StatusBadRequest},
		{"post blank species", "POST", "/animals", `{"species": "  "}`, http.StatusBadRequest},
		{"post malformed json", "POST", "/animals", `{"species":`, http.StatusBadRequest},
		{"post unknown field", "POST", "/animals", `{"species": "Wolf", "legs": 4}`, http.StatusBadRequest},
		{"post negative age", "POST", "/animals", `{"species": "Wolf", "age": -1}`, http.StatusBadRequest},
		{"post trailing garbage", "POST", "/animals", `{"species": "Wolf"} garbage`, http.StatusBadRequest},
		{"post two values", "POST", "/animals", `{"species": "Wolf"}{"species": "Fox"}`, http.StatusBadRequest},
		{"put trailing value", "PUT", "/animals/1", `{"age": 1} {}`, http.StatusBadRequest},
		{"put empty body", "PUT", "/animals/1", ``, http.StatusBadRequest},
		{"put empty object", "PUT", "/animals/1", `{}`, http.StatusBadRequest},
		{"put id change", "PUT", "/animals/1", `{"id": 5, "age": 1}`, http.StatusBadRequest},
		{"put missing record wins over body", "PUT", "/animals/99", ``, http.StatusNotFound},
		{"put missing record", "PUT", "/animals/99", `{"age": 1}`, http.StatusNotFound},
		{"non integer id", "GET", "/animals/abc", ``, http.StatusNotFound},
		{"negative id", "GET", "/animals/-1", ``, http.StatusNotFound},
		{"wrong verb", "PATCH", "/animals/1", `{"age": 1}`, http.StatusMethodNotAllowed},
		{"unknown route", "GET", "/zebras", ``, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, body := doRaw(t, ts.URL, tc.method, tc.path, tc.body, nil)
			if st != tc.status {
				t.Fatalf("expected %d, got %d body=%s", tc.status, st, string(body))
			}
			if errorMessage(t, body) == "" {
				t.Fatalf("expected JSON error body, got %s", string(body))
			}
		})
	}

	// nada de lo anterior modificó el registro
	items := listAnimals(t, ts.URL)
	want := animalDTO{ID: 1, Species: "Lion", Gender: "Unknown"}
	if len(items) != 1 || items[0] != want {
		t.Fatalf("unexpected animals after bad requests: %+v", items)
	}
}

func TestHTTP_Animals_UpdateRenameConflict(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	createAnimal(t, ts.URL, "Lion")
	createAnimal(t, ts.URL, "Tiger")

	st, body := doReq(t, ts.URL, "PUT", "/animals/2", map[string]any{"species": "Lion"})
	if st != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", st, string(body))
	}

	// id igual al del path es aceptado
	st, body = doReq(t, ts.URL, "PUT", "/animals/2", map[string]any{"id": 2, "species": "Panther"})
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
}

func TestHTTP_EndToEnd_Employees(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	var ann employeeDTO
	{
		st, body := doReq(t, ts.URL, "POST", "/employees", map[string]any{
			"name":     "Ann",
			"email":    "ann@zoo.test",
			"role":     "keeper",
			"schedule": map[string]any{"mon": "9-17"},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", st, string(body))
		}
		mustUnmarshal(t, body, &ann)
		if ann.ID != 1 || ann.PhoneNumber != "Unknown" || ann.Role != "keeper" {
			t.Fatalf("unexpected employee %+v", ann)
		}
		sched, ok := ann.Schedule.(map[string]any)
		if !ok || sched["mon"] != "9-17" {
			t.Fatalf("unexpected schedule %#v", ann.Schedule)
		}
	}

	// defaults sin schedule => null
	{
		st, body := doReq(t, ts.URL, "POST", "/employees", map[string]any{"name": "Bob"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", st, string(body))
		}
		if !bytes.Contains(body, []byte(`"schedule":null`)) {
			t.Fatalf("expected null schedule, got %s", string(body))
		}
	}

	// duplicado
	{
		st, body := doReq(t, ts.URL, "POST", "/employees", map[string]any{"name": "Ann"})
		if st != http.StatusConflict {
			t.Fatalf("expected 409, got %d body=%s", st, string(body))
		}
	}

	// schedule: null limpia, el resto queda igual
	{
		st, body := doRaw(t, ts.URL, "PUT", "/employees/1", `{"schedule": null}`, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", st, string(body))
		}
		var got employeeDTO
		mustUnmarshal(t, body, &got)
		if got.Schedule != nil || got.Email != "ann@zoo.test" || got.Role != "keeper" {
			t.Fatalf("unexpected employee after update %+v", got)
		}
	}

	// 400 / 404
	if st, _ := doRaw(t, ts.URL, "PUT", "/employees/1", `{}`, nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty update, got %d", st)
	}
	if st, _ := doRaw(t, ts.URL, "PUT", "/employees/42", ``, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 for missing employee, got %d", st)
	}
	if st, _ := doRaw(t, ts.URL, "POST", "/employees", `{"email": "x@zoo.test"}`, nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 without name, got %d", st)
	}
	if st, _ := doRaw(t, ts.URL, "POST", "/employees", `{"name": "Cid"} garbage`, nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for trailing data, got %d", st)
	}
	if st, _ := doRaw(t, ts.URL, "PUT", "/employees/1", `{"role": "vet"} {}`, nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for trailing value, got %d", st)
	}

	// delete
	{
		st, body := doReq(t, ts.URL, "DELETE", "/employees/1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", st, string(body))
		}
		var res map[string]string
		mustUnmarshal(t, body, &res)
		if res["result"] != "Employee deleted" {
			t.Fatalf("unexpected delete result %v", res)
		}
	}

	st, body := doReq(t, ts.URL, "GET", "/employees", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var items []employeeDTO
	mustUnmarshal(t, body, &items)
	if len(items) != 1 || items[0].Name != "Bob" {
		t.Fatalf("unexpected employees %+v", items)
	}
}

func TestHTTP_CollectionsAreIndependent(t *testing.T) {
	b := memory.NewStore()
	ts := httptest.NewServer(router.NewRouter(router.Options{Blob: b, AnimalsKey: "a.json", EmployeesKey: "e.json"}))
	defer ts.Close()

	createAnimal(t, ts.URL, "Lion")
	if st, _ := doReq(t, ts.URL, "POST", "/employees", map[string]any{"name": "Lion"}); st != http.StatusCreated {
		t.Fatalf("same value in another collection must be allowed, got %d", st)
	}

	for _, key := range []string{"a.json", "e.json"} {
		if _, err := b.Get(context.Background(), key); err != nil {
			t.Fatalf("expected document %s: %v", key, err)
		}
	}
}

func TestHTTP_CorruptStorageIs500(t *testing.T) {
	b := memory.NewStore()
	if err := b.Put(context.Background(), "animals.json", []byte("{not json")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	ts := httptest.NewServer(router.NewRouter(router.Options{Blob: b}))
	defer ts.Close()

	for _, req := range []struct{ method, path, body string }{
		{"GET", "/animals", ""},
		{"GET", "/animals/1", ""},
		{"POST", "/animals", `{"species": "Lion"}`},
	} {
		st, body := doRaw(t, ts.URL, req.method, req.path, req.body, nil)
		if st != http.StatusInternalServerError {
			t.Fatalf("%s %s: expected 500, got %d body=%s", req.method, req.path, st, string(body))
		}
		if msg := errorMessage(t, body); msg != "internal error" {
			t.Fatalf("storage details must not leak, got %q", msg)
		}
	}

	// el documento corrupto no se pisa
	data, _ := b.Get(context.Background(), "animals.json")
	if string(data) != "{not json" {
		t.Fatalf("corrupt document was overwritten: %s", string(data))
	}

	// employees no se ve afectado
	if st, _ := doReq(t, ts.URL, "GET", "/employees", nil); st != http.StatusOK {
		t.Fatalf("employees should still work, got %d", st)
	}
}

func TestHTTP_Ambient(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// greeting
	{
		st, body := doReq(t, ts.URL, "GET", "/", nil)
		if st != http.StatusOK || string(body) != "<p> hello world </p>" {
			t.Fatalf("unexpected greeting %d %q", st, string(body))
		}
	}

	// request id: se reutiliza el entrante o se genera
	{
		resp := rawResponse(t, ts.URL, "GET", "/health", map[string]string{"X-Request-ID": "req-123"})
		if got := resp.Header.Get("X-Request-ID"); got != "req-123" {
			t.Fatalf("expected echoed request id, got %q", got)
		}
		resp = rawResponse(t, ts.URL, "GET", "/health", nil)
		if got := resp.Header.Get("X-Request-ID"); len(got) != 36 {
			t.Fatalf("expected generated uuid, got %q", got)
		}
	}

	// métricas con el patrón de ruta de chi
	createAnimal(t, ts.URL, "Lion")
	doReq(t, ts.URL, "GET", "/animals/1", nil)
	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 from /metrics, got %d", st)
		}
		text := string(body)
		for _, want := range []string{
			`zoo_records_http_requests_total{method="GET",route="/animals/{id:[0-9]+}",status="200"} 1`,
			`zoo_records_record_store_operations_total{collection="animal",op="insert",result="ok"} 1`,
		} {
			if !strings.Contains(text, want) {
				t.Fatalf("metrics missing %q", want)
			}
		}
	}

	// swagger
	{
		st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
		if st != http.StatusOK || !bytes.Contains(body, []byte(`"/animals/{id}"`)) {
			t.Fatalf("unexpected swagger doc %d %s", st, string(body))
		}
	}
}

func TestHTTP_WithClient(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	c, err := httpclient.New(ts.URL, 0)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	ctx := context.Background()

	if err := c.Health(ctx); err != nil {
		t.Fatalf("health: %v", err)
	}

	var created animalDTO
	if err := c.DoJSON(ctx, "POST", "/animals", map[string]any{"species": "Okapi", "gender": "female"}, &created); err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 1 || created.Gender != "female" {
		t.Fatalf("unexpected animal %+v", created)
	}

	err = c.DoJSON(ctx, "GET", "/animals/7", nil, nil)
	if httpclient.StatusCode(err) != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
	var he *httpclient.HTTPError
	if !errors.As(err, &he) || he.Message != "animal 7 not found" {
		t.Fatalf("unexpected error %v", err)
	}
}

// -------------------------
// Helpers
// -------------------------

func createAnimal(t *testing.T, baseURL, species string) animalDTO {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/animals", map[string]any{"species": species})
	if st != http.StatusCreated {
		t.Fatalf("create animal %s: expected 201, got %d body=%s", species, st, string(body))
	}
	var a animalDTO
	mustUnmarshal(t, body, &a)
	return a
}

func listAnimals(t *testing.T, baseURL string) []animalDTO {
	t.Helper()
	st, body := doReq(t, baseURL, "GET", "/animals", nil)
	if st != http.StatusOK {
		t.Fatalf("list animals: expected 200, got %d body=%s", st, string(body))
	}
	var items []animalDTO
	mustUnmarshal(t, body, &items)
	return items
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	raw := ""
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		raw = string(b)
	}
	return doRaw(t, baseURL, method, path, raw, nil)
}

func doRaw(t *testing.T, baseURL, method, path, body string, headers map[string]string) (int, []byte) {
	t.Helper()

	resp := rawRequest(t, baseURL, method, path, body, headers)
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}

func rawResponse(t *testing.T, baseURL, method, path string, headers map[string]string) *http.Response {
	t.Helper()
	resp := rawRequest(t, baseURL, method, path, "", headers)
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return resp
}

func rawRequest(t *testing.T, baseURL, method, path, body string, headers map[string]string) *http.Response {
	t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}

func mustUnmarshal(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("unmarshal %s: %v", string(b), err)
	}
}

func errorMessage(t *testing.T, b []byte) string {
	t.Helper()
	var eb struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(b, &eb); err != nil {
		return ""
	}
	return eb.Error
}
