package authchain_test

import (
	"context"
	"encoding/base64"

	authchain "github.com/goliatone/go-auth-chain"
	"github.com/goliatone/go-router"
)

// fakeContext implements router.Context over plain maps so the pipeline
// can run without a live transport. The assertion keeps the fake, and
// with it every extractor and stage, pinned to the interface the
// go.mod-pinned router actually exports.
var _ router.Context = (*fakeContext)(nil)

type fakeContext struct {
	method  string
	path    string
	headers map[string]string
	cookies map[string]string
	locals  map[any]any
	ctx     context.Context

	status      int
	jsonBody    any
	sent        string
	respHeaders map[string]string
	nextCalled  bool
	nextErr     error
}

func newFakeContext(method, path string) *fakeContext {
	return &fakeContext{
		method:      method,
		path:        path,
		headers:     map[string]string{},
		cookies:     map[string]string{},
		locals:      map[any]any{},
		respHeaders: map[string]string{},
		ctx:         context.Background(),
	}
}

func (f *fakeContext) withBasicAuth(name, pass string) *fakeContext {
	f.headers[router.HeaderAuthorization] = "Basic " + base64.StdEncoding.EncodeToString([]byte(name+":"+pass))
	return f
}

func (f *fakeContext) withBearer(token string) *fakeContext {
	f.headers[router.HeaderAuthorization] = "Bearer " + token
	return f
}

func (f *fakeContext) withHeader(key, val string) *fakeContext {
	f.headers[key] = val
	return f
}

func (f *fakeContext) withCookie(name, val string) *fakeContext {
	f.cookies[name] = val
	return f
}

func (f *fakeContext) Next() error {
	f.nextCalled = true
	return f.nextErr
}

func (f *fakeContext) Context() context.Context { return f.ctx }

func (f *fakeContext) SetContext(ctx context.Context) { f.ctx = ctx }

func (f *fakeContext) Path() string { return f.path }

func (f *fakeContext) Method() string { return f.method }

func (f *fakeContext) Body() []byte { return nil }

func (f *fakeContext) Status(code int) router.Context {
	f.status = code
	return f
}

func (f *fakeContext) SendString(s string) error {
	f.sent = s
	return nil
}

func (f *fakeContext) Send(b []byte) error {
	f.sent = string(b)
	return nil
}

func (f *fakeContext) JSON(code int, val any) error {
	f.status = code
	f.jsonBody = val
	return nil
}

func (f *fakeContext) NoContent(code int) error {
	f.status = code
	return nil
}

func (f *fakeContext) Render(name string, bind any, layout ...string) error { return nil }

func (f *fakeContext) Redirect(path string, status ...int) error { return nil }

func (f *fakeContext) RedirectToRoute(name string, data router.ViewContext, status ...int) error {
	return nil
}

func (f *fakeContext) RedirectBack(fallback string, status ...int) error { return nil }

func (f *fakeContext) SetHeader(key, val string) router.Context {
	f.respHeaders[key] = val
	return f
}

func (f *fakeContext) Header(key string) string { return f.headers[key] }

func (f *fakeContext) Get(key string, defaultValue any) any {
	if v, ok := f.locals[key]; ok {
		return v
	}
	return defaultValue
}

func (f *fakeContext) GetBool(key string, defaultValue bool) bool {
	if v, ok := f.locals[key].(bool); ok {
		return v
	}
	return defaultValue
}

func (f *fakeContext) GetInt(key string, def int) int {
	if v, ok := f.locals[key].(int); ok {
		return v
	}
	return def
}

func (f *fakeContext) Set(key string, val any) { f.locals[key] = val }

func (f *fakeContext) Bind(i any) error { return nil }

func (f *fakeContext) BindJSON(i any) error { return nil }

func (f *fakeContext) BindXML(i any) error { return nil }

func (f *fakeContext) BindQuery(i any) error { return nil }

func (f *fakeContext) CookieParser(i any) error { return nil }

func (f *fakeContext) Cookie(cookie *router.Cookie) { f.cookies[cookie.Name] = cookie.Value }

func (f *fakeContext) Cookies(key string, defaultValue ...string) string {
	if v, ok := f.cookies[key]; ok {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

func (f *fakeContext) Param(key string, defaultValue ...string) string {
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

func (f *fakeContext) ParamsInt(key string, defaultValue int) int { return defaultValue }

func (f *fakeContext) Query(key string, defaultValue string) string { return defaultValue }

func (f *fakeContext) QueryInt(key string, defaultValue int) int { return defaultValue }

func (f *fakeContext) Queries() map[string]string { return nil }

func (f *fakeContext) GetString(key string, defaultValue string) string {
	if v, ok := f.locals[key].(string); ok {
		return v
	}
	return defaultValue
}

func (f *fakeContext) Locals(key any, value ...any) any {
	if len(value) > 0 {
		f.locals[key] = value[0]
		return value[0]
	}
	return f.locals[key]
}

func (f *fakeContext) OriginalURL() string { return f.path }

func (f *fakeContext) OnNext(callback func() error) {}

func (f *fakeContext) Referer() string { return "" }

// lookupTable is a UserLookup backed by a map, the shape most tests
// want.
func lookupTable(users map[string]*authchain.User) authchain.UserLookup {
	return func(_ context.Context, username string) (*authchain.User, error) {
		return users[username], nil
	}
}

// runPipeline drives a context through the default chain the way a
// router would: stop on error, stop when a stage terminated without
// calling next.
func runPipeline(a *authchain.Auth, c *fakeContext) error {
	noop := func(router.Context) error { return nil }
	for _, mw := range a.Default() {
		c.nextCalled = false
		if err := mw(noop)(c); err != nil {
			return err
		}
		if !c.nextCalled {
			return nil
		}
	}
	return nil
}

// runGate applies a single gate middleware after the pipeline ran.
func runGate(mw router.MiddlewareFunc, c *fakeContext) error {
	noop := func(router.Context) error { return nil }
	c.nextCalled = false
	return mw(noop)(c)
}
