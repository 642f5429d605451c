package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/result"
)

type testPost struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// fakeCaller returns a scripted outcome and records the last request.
type fakeCaller struct {
	payload Payload
	failure *result.Failure
	calls   int
	lastReq Request
}

func (f *fakeCaller) Call(_ context.Context, req Request) result.Result[Payload] {
	f.calls++
	f.lastReq = req
	if f.failure != nil {
		return result.Fail[Payload](f.failure)
	}
	return result.Ok(f.payload)
}

func okJSON(body string) Payload {
	return Payload{StatusCode: http.StatusOK, Body: []byte(body)}
}

func TestGet_DecodesObject(t *testing.T) {
	caller := &fakeCaller{payload: okJSON(`{"userId":1,"id":2,"title":"hello","body":"world"}`)}

	res := Get[testPost](context.Background(), caller, "/posts/2")

	if res.IsErr() {
		t.Fatalf("unexpected failure: %v", res.Err())
	}
	post := res.Value()
	if post.ID != 2 || post.Title != "hello" {
		t.Errorf("unexpected value: %+v", post)
	}
	if caller.lastReq.Method != http.MethodGet {
		t.Errorf("expected GET, got %s", caller.lastReq.Method)
	}
	if caller.lastReq.Path != "/posts/2" {
		t.Errorf("unexpected path: %s", caller.lastReq.Path)
	}
}

func TestGet_PropagatesFailure(t *testing.T) {
	failure := result.NotFound("resource not found: /posts/9999").WithStatus(404)
	caller := &fakeCaller{failure: failure}

	res := Get[testPost](context.Background(), caller, "/posts/9999")

	if res.IsOk() {
		t.Fatal("expected failure")
	}
	if res.Err() != failure {
		t.Errorf("failure should pass through unmodified, got %v", res.Err())
	}
}

func TestGet_DecodeFailure(t *testing.T) {
	caller := &fakeCaller{payload: okJSON(`{not json`)}

	res := Get[testPost](context.Background(), caller, "/posts/1")

	if res.IsOk() {
		t.Fatal("expected decode failure")
	}
	if res.Err().Kind != result.KindException {
		t.Errorf("expected exception kind, got %v", res.Err().Kind)
	}
}

func TestGet_EmptyBody(t *testing.T) {
	caller := &fakeCaller{payload: Payload{StatusCode: http.StatusOK}}

	res := Get[testPost](context.Background(), caller, "/posts/1")

	if res.IsErr() {
		t.Fatalf("unexpected failure: %v", res.Err())
	}
	if res.Value() != (testPost{}) {
		t.Errorf("expected zero value, got %+v", res.Value())
	}
}

func TestGetList_DecodesItems(t *testing.T) {
	caller := &fakeCaller{payload: okJSON(`[{"id":1,"title":"a"},{"id":2,"title":"b"}]`)}

	res := GetList[testPost](context.Background(), caller, "/posts")

	if res.IsErr() {
		t.Fatalf("unexpected failure: %v", res.Err())
	}
	items := res.Value()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[1].Title != "b" {
		t.Errorf("unexpected second item: %+v", items[1])
	}
}

func TestGetList_NullBody(t *testing.T) {
	caller := &fakeCaller{payload: okJSON(`null`)}

	res := GetList[testPost](context.Background(), caller, "/posts")

	if res.IsErr() {
		t.Fatalf("null body should decode to an ok result, got %v", res.Err())
	}
	items := res.Value()
	if items == nil {
		t.Fatal("expected a non-nil empty slice")
	}
	if len(items) != 0 {
		t.Errorf("expected empty slice, got %d items", len(items))
	}
}

func TestGetList_EmptyBody(t *testing.T) {
	caller := &fakeCaller{payload: Payload{StatusCode: http.StatusOK}}

	res := GetList[testPost](context.Background(), caller, "/posts")

	if res.IsErr() {
		t.Fatalf("unexpected failure: %v", res.Err())
	}
	if res.Value() == nil || len(res.Value()) != 0 {
		t.Errorf("expected non-nil empty slice, got %#v", res.Value())
	}
}

func TestPost_SendsBody(t *testing.T) {
	caller := &fakeCaller{payload: okJSON(`{"id":101,"title":"new"}`)}
	body := testPost{UserID: 1, Title: "new", Body: "content"}

	res := Post[testPost](context.Background(), caller, "/posts", body)

	if res.IsErr() {
		t.Fatalf("unexpected failure: %v", res.Err())
	}
	if res.Value().ID != 101 {
		t.Errorf("expected id 101, got %d", res.Value().ID)
	}
	if caller.lastReq.Method != http.MethodPost {
		t.Errorf("expected POST, got %s", caller.lastReq.Method)
	}
	if !reflect.DeepEqual(caller.lastReq.Body, body) {
		t.Errorf("body not forwarded: %+v", caller.lastReq.Body)
	}
}

func TestPut_SendsBody(t *testing.T) {
	caller := &fakeCaller{payload: okJSON(`{"id":1,"title":"updated"}`)}

	res := Put[testPost](context.Background(), caller, "/posts/1", testPost{ID: 1, Title: "updated"})

	if res.IsErr() {
		t.Fatalf("unexpected failure: %v", res.Err())
	}
	if caller.lastReq.Method != http.MethodPut {
		t.Errorf("expected PUT, got %s", caller.lastReq.Method)
	}
	if res.Value().Title != "updated" {
		t.Errorf("unexpected value: %+v", res.Value())
	}
}

func TestDelete_ReturnsUnit(t *testing.T) {
	caller := &fakeCaller{payload: okJSON(`{}`)}

	res := Delete(context.Background(), caller, "/posts/1")

	if res.IsErr() {
		t.Fatalf("unexpected failure: %v", res.Err())
	}
	if caller.lastReq.Method != http.MethodDelete {
		t.Errorf("expected DELETE, got %s", caller.lastReq.Method)
	}
	if caller.lastReq.Body != nil {
		t.Errorf("expected no body, got %+v", caller.lastReq.Body)
	}
}

func TestRequestOptions(t *testing.T) {
	caller := &fakeCaller{payload: okJSON(`[]`)}

	GetList[testPost](context.Background(), caller, "/posts",
		WithQuery("userId", "3"),
		WithHeader("X-Trace", "abc"),
	)

	if got := caller.lastReq.Query["userId"]; got != "3" {
		t.Errorf("expected query userId=3, got %q", got)
	}
	if got := caller.lastReq.Headers["X-Trace"]; got != "abc" {
		t.Errorf("expected header X-Trace=abc, got %q", got)
	}
}

func TestGetList_RepeatedCallsAreEqual(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"userId":1,"id":1,"title":"a","body":"x"},{"userId":1,"id":2,"title":"b","body":"y"}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	first := GetList[testPost](ctx, client, "/posts")
	second := GetList[testPost](ctx, client, "/posts")

	if first.IsErr() || second.IsErr() {
		t.Fatalf("unexpected failures: %v, %v", first.Err(), second.Err())
	}
	if !reflect.DeepEqual(first.Value(), second.Value()) {
		t.Errorf("repeated reads should be structurally equal:\n%+v\n%+v", first.Value(), second.Value())
	}
}
