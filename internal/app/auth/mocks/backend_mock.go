// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/66gu1/filmoradmin/internal/app/auth.Backend -o backend_mock.go -n BackendMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/66gu1/filmoradmin/internal/app/backend"
	"github.com/gojuno/minimock/v3"
)

// BackendMock implements mm_auth.Backend
type BackendMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcAssignedPermissions          func(ctx context.Context, token string) (aa1 []backend.AssignedPermission, err error)
	funcAssignedPermissionsOrigin    string
	inspectFuncAssignedPermissions   func(ctx context.Context, token string)
	afterAssignedPermissionsCounter  uint64
	beforeAssignedPermissionsCounter uint64
	AssignedPermissionsMock          mBackendMockAssignedPermissions

	funcCompany          func(ctx context.Context, token string, id int64) (c2 backend.Company, err error)
	funcCompanyOrigin    string
	inspectFuncCompany   func(ctx context.Context, token string, id int64)
	afterCompanyCounter  uint64
	beforeCompanyCounter uint64
	CompanyMock          mBackendMockCompany

	funcEmployeeInfo          func(ctx context.Context, token string) (e1 backend.Employee, err error)
	funcEmployeeInfoOrigin    string
	inspectFuncEmployeeInfo   func(ctx context.Context, token string)
	afterEmployeeInfoCounter  uint64
	beforeEmployeeInfoCounter uint64
	EmployeeInfoMock          mBackendMockEmployeeInfo

	funcLogin          func(ctx context.Context, username string, password string) (t1 backend.TokenPair, err error)
	funcLoginOrigin    string
	inspectFuncLogin   func(ctx context.Context, username string, password string)
	afterLoginCounter  uint64
	beforeLoginCounter uint64
	LoginMock          mBackendMockLogin

	funcPermissionCatalog          func(ctx context.Context, token string) (pa1 []backend.Permission, err error)
	funcPermissionCatalogOrigin    string
	inspectFuncPermissionCatalog   func(ctx context.Context, token string)
	afterPermissionCatalogCounter  uint64
	beforePermissionCatalogCounter uint64
	PermissionCatalogMock          mBackendMockPermissionCatalog

	funcRefreshToken          func(ctx context.Context, refreshToken string) (t1 backend.TokenPair, err error)
	funcRefreshTokenOrigin    string
	inspectFuncRefreshToken   func(ctx context.Context, refreshToken string)
	afterRefreshTokenCounter  uint64
	beforeRefreshTokenCounter uint64
	RefreshTokenMock          mBackendMockRefreshToken
}

// NewBackendMock returns a mock for mm_auth.Backend
func NewBackendMock(t minimock.Tester) *BackendMock {
	m := &BackendMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.AssignedPermissionsMock = mBackendMockAssignedPermissions{mock: m}
	m.AssignedPermissionsMock.callArgs = []*BackendMockAssignedPermissionsParams{}

	m.CompanyMock = mBackendMockCompany{mock: m}
	m.CompanyMock.callArgs = []*BackendMockCompanyParams{}

	m.EmployeeInfoMock = mBackendMockEmployeeInfo{mock: m}
	m.EmployeeInfoMock.callArgs = []*BackendMockEmployeeInfoParams{}

	m.LoginMock = mBackendMockLogin{mock: m}
	m.LoginMock.callArgs = []*BackendMockLoginParams{}

	m.PermissionCatalogMock = mBackendMockPermissionCatalog{mock: m}
	m.PermissionCatalogMock.callArgs = []*BackendMockPermissionCatalogParams{}

	m.RefreshTokenMock = mBackendMockRefreshToken{mock: m}
	m.RefreshTokenMock.callArgs = []*BackendMockRefreshTokenParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mBackendMockAssignedPermissions struct {
	optional           bool
	mock               *BackendMock
	defaultExpectation *BackendMockAssignedPermissionsExpectation
	expectations       []*BackendMockAssignedPermissionsExpectation

	callArgs []*BackendMockAssignedPermissionsParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// BackendMockAssignedPermissionsExpectation specifies expectation struct of the Backend.AssignedPermissions
type BackendMockAssignedPermissionsExpectation struct {
	mock               *BackendMock
	params             *BackendMockAssignedPermissionsParams
	paramPtrs          *BackendMockAssignedPermissionsParamPtrs
	expectationOrigins BackendMockAssignedPermissionsExpectationOrigins
	results            *BackendMockAssignedPermissionsResults
	returnOrigin       string
	Counter            uint64
}

// BackendMockAssignedPermissionsParams contains parameters of the Backend.AssignedPermissions
type BackendMockAssignedPermissionsParams struct {
	ctx   context.Context
	token string
}

// BackendMockAssignedPermissionsParamPtrs contains pointers to parameters of the Backend.AssignedPermissions
type BackendMockAssignedPermissionsParamPtrs struct {
	ctx   *context.Context
	token *string
}

// BackendMockAssignedPermissionsResults contains results of the Backend.AssignedPermissions
type BackendMockAssignedPermissionsResults struct {
	aa1 []backend.AssignedPermission
	err error
}

// BackendMockAssignedPermissionsOrigins contains origins of expectations of the Backend.AssignedPermissions
type BackendMockAssignedPermissionsExpectationOrigins struct {
	origin      string
	originCtx   string
	originToken string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmAssignedPermissions *mBackendMockAssignedPermissions) Optional() *mBackendMockAssignedPermissions {
	mmAssignedPermissions.optional = true
	return mmAssignedPermissions
}

// Expect sets up expected params for Backend.AssignedPermissions
func (mmAssignedPermissions *mBackendMockAssignedPermissions) Expect(ctx context.Context, token string) *mBackendMockAssignedPermissions {
	if mmAssignedPermissions.mock.funcAssignedPermissions != nil {
		mmAssignedPermissions.mock.t.Fatalf("BackendMock.AssignedPermissions mock is already set by Set")
	}

	if mmAssignedPermissions.defaultExpectation == nil {
		mmAssignedPermissions.defaultExpectation = &BackendMockAssignedPermissionsExpectation{}
	}

	if mmAssignedPermissions.defaultExpectation.paramPtrs != nil {
		mmAssignedPermissions.mock.t.Fatalf("BackendMock.AssignedPermissions mock is already set by ExpectParams functions")
	}

	mmAssignedPermissions.defaultExpectation.params = &BackendMockAssignedPermissionsParams{ctx, token}
	mmAssignedPermissions.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmAssignedPermissions.expectations {
		if minimock.Equal(e.params, mmAssignedPermissions.defaultExpectation.params) {
			mmAssignedPermissions.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmAssignedPermissions.defaultExpectation.params)
		}
	}

	return mmAssignedPermissions
}

// ExpectCtxParam1 sets up expected param ctx for Backend.AssignedPermissions
func (mmAssignedPermissions *mBackendMockAssignedPermissions) ExpectCtxParam1(ctx context.Context) *mBackendMockAssignedPermissions {
	if mmAssignedPermissions.mock.funcAssignedPermissions != nil {
		mmAssignedPermissions.mock.t.Fatalf("BackendMock.AssignedPermissions mock is already set by Set")
	}

	if mmAssignedPermissions.defaultExpectation == nil {
		mmAssignedPermissions.defaultExpectation = &BackendMockAssignedPermissionsExpectation{}
	}

	if mmAssignedPermissions.defaultExpectation.params != nil {
		mmAssignedPermissions.mock.t.Fatalf("BackendMock.AssignedPermissions mock is already set by Expect")
	}

	if mmAssignedPermissions.defaultExpectation.paramPtrs == nil {
		mmAssignedPermissions.defaultExpectation.paramPtrs = &BackendMockAssignedPermissionsParamPtrs{}
	}
	mmAssignedPermissions.defaultExpectation.paramPtrs.ctx = &ctx
	mmAssignedPermissions.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmAssignedPermissions
}

// ExpectTokenParam2 sets up expected param token for Backend.AssignedPermissions
func (mmAssignedPermissions *mBackendMockAssignedPermissions) ExpectTokenParam2(token string) *mBackendMockAssignedPermissions {
	if mmAssignedPermissions.mock.funcAssignedPermissions != nil {
		mmAssignedPermissions.mock.t.Fatalf("BackendMock.AssignedPermissions mock is already set by Set")
	}

	if mmAssignedPermissions.defaultExpectation == nil {
		mmAssignedPermissions.defaultExpectation = &BackendMockAssignedPermissionsExpectation{}
	}

	if mmAssignedPermissions.defaultExpectation.params != nil {
		mmAssignedPermissions.mock.t.Fatalf("BackendMock.AssignedPermissions mock is already set by Expect")
	}

	if mmAssignedPermissions.defaultExpectation.paramPtrs == nil {
		mmAssignedPermissions.defaultExpectation.paramPtrs = &BackendMockAssignedPermissionsParamPtrs{}
	}
	mmAssignedPermissions.defaultExpectation.paramPtrs.token = &token
	mmAssignedPermissions.defaultExpectation.expectationOrigins.originToken = minimock.CallerInfo(1)

	return mmAssignedPermissions
}

// Inspect accepts an inspector function that has same arguments as the Backend.AssignedPermissions
func (mmAssignedPermissions *mBackendMockAssignedPermissions) Inspect(f func(ctx context.Context, token string)) *mBackendMockAssignedPermissions {
	if mmAssignedPermissions.mock.inspectFuncAssignedPermissions != nil {
		mmAssignedPermissions.mock.t.Fatalf("Inspect function is already set for BackendMock.AssignedPermissions")
	}

	mmAssignedPermissions.mock.inspectFuncAssignedPermissions = f

	return mmAssignedPermissions
}

// Return sets up results that will be returned by Backend.AssignedPermissions
func (mmAssignedPermissions *mBackendMockAssignedPermissions) Return(aa1 []backend.AssignedPermission, err error) *BackendMock {
	if mmAssignedPermissions.mock.funcAssignedPermissions != nil {
		mmAssignedPermissions.mock.t.Fatalf("BackendMock.AssignedPermissions mock is already set by Set")
	}

	if mmAssignedPermissions.defaultExpectation == nil {
		mmAssignedPermissions.defaultExpectation = &BackendMockAssignedPermissionsExpectation{mock: mmAssignedPermissions.mock}
	}
	mmAssignedPermissions.defaultExpectation.results = &BackendMockAssignedPermissionsResults{aa1, err}
	mmAssignedPermissions.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmAssignedPermissions.mock
}

// Set uses given function f to mock the Backend.AssignedPermissions method
func (mmAssignedPermissions *mBackendMockAssignedPermissions) Set(f func(ctx context.Context, token string) (aa1 []backend.AssignedPermission, err error)) *BackendMock {
	if mmAssignedPermissions.defaultExpectation != nil {
		mmAssignedPermissions.mock.t.Fatalf("Default expectation is already set for the Backend.AssignedPermissions method")
	}

	if len(mmAssignedPermissions.expectations) > 0 {
		mmAssignedPermissions.mock.t.Fatalf("Some expectations are already set for the Backend.AssignedPermissions method")
	}

	mmAssignedPermissions.mock.funcAssignedPermissions = f
	mmAssignedPermissions.mock.funcAssignedPermissionsOrigin = minimock.CallerInfo(1)
	return mmAssignedPermissions.mock
}

// When sets expectation for the Backend.AssignedPermissions which will trigger the result defined by the following
// Then helper
func (mmAssignedPermissions *mBackendMockAssignedPermissions) When(ctx context.Context, token string) *BackendMockAssignedPermissionsExpectation {
	if mmAssignedPermissions.mock.funcAssignedPermissions != nil {
		mmAssignedPermissions.mock.t.Fatalf("BackendMock.AssignedPermissions mock is already set by Set")
	}

	expectation := &BackendMockAssignedPermissionsExpectation{
		mock:               mmAssignedPermissions.mock,
		params:             &BackendMockAssignedPermissionsParams{ctx, token},
		expectationOrigins: BackendMockAssignedPermissionsExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmAssignedPermissions.expectations = append(mmAssignedPermissions.expectations, expectation)
	return expectation
}

// Then sets up Backend.AssignedPermissions return parameters for the expectation previously defined by the When method
func (e *BackendMockAssignedPermissionsExpectation) Then(aa1 []backend.AssignedPermission, err error) *BackendMock {
	e.results = &BackendMockAssignedPermissionsResults{aa1, err}
	return e.mock
}

// Times sets number of times Backend.AssignedPermissions should be invoked
func (mmAssignedPermissions *mBackendMockAssignedPermissions) Times(n uint64) *mBackendMockAssignedPermissions {
	if n == 0 {
		mmAssignedPermissions.mock.t.Fatalf("Times of BackendMock.AssignedPermissions mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmAssignedPermissions.expectedInvocations, n)
	mmAssignedPermissions.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmAssignedPermissions
}

func (mmAssignedPermissions *mBackendMockAssignedPermissions) invocationsDone() bool {
	if len(mmAssignedPermissions.expectations) == 0 && mmAssignedPermissions.defaultExpectation == nil && mmAssignedPermissions.mock.funcAssignedPermissions == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmAssignedPermissions.mock.afterAssignedPermissionsCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmAssignedPermissions.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// AssignedPermissions implements mm_auth.Backend
func (mmAssignedPermissions *BackendMock) AssignedPermissions(ctx context.Context, token string) (aa1 []backend.AssignedPermission, err error) {
	mm_atomic.AddUint64(&mmAssignedPermissions.beforeAssignedPermissionsCounter, 1)
	defer mm_atomic.AddUint64(&mmAssignedPermissions.afterAssignedPermissionsCounter, 1)

	mmAssignedPermissions.t.Helper()

	if mmAssignedPermissions.inspectFuncAssignedPermissions != nil {
		mmAssignedPermissions.inspectFuncAssignedPermissions(ctx, token)
	}

	mm_params := BackendMockAssignedPermissionsParams{ctx, token}

	// Record call args
	mmAssignedPermissions.AssignedPermissionsMock.mutex.Lock()
	mmAssignedPermissions.AssignedPermissionsMock.callArgs = append(mmAssignedPermissions.AssignedPermissionsMock.callArgs, &mm_params)
	mmAssignedPermissions.AssignedPermissionsMock.mutex.Unlock()

	for _, e := range mmAssignedPermissions.AssignedPermissionsMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.aa1, e.results.err
		}
	}

	if mmAssignedPermissions.AssignedPermissionsMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmAssignedPermissions.AssignedPermissionsMock.defaultExpectation.Counter, 1)
		mm_want := mmAssignedPermissions.AssignedPermissionsMock.defaultExpectation.params
		mm_want_ptrs := mmAssignedPermissions.AssignedPermissionsMock.defaultExpectation.paramPtrs

		mm_got := BackendMockAssignedPermissionsParams{ctx, token}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmAssignedPermissions.t.Errorf("BackendMock.AssignedPermissions got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAssignedPermissions.AssignedPermissionsMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.token != nil && !minimock.Equal(*mm_want_ptrs.token, mm_got.token) {
				mmAssignedPermissions.t.Errorf("BackendMock.AssignedPermissions got unexpected parameter token, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAssignedPermissions.AssignedPermissionsMock.defaultExpectation.expectationOrigins.originToken, *mm_want_ptrs.token, mm_got.token, minimock.Diff(*mm_want_ptrs.token, mm_got.token))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmAssignedPermissions.t.Errorf("BackendMock.AssignedPermissions got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmAssignedPermissions.AssignedPermissionsMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmAssignedPermissions.AssignedPermissionsMock.defaultExpectation.results
		if mm_results == nil {
			mmAssignedPermissions.t.Fatal("No results are set for the BackendMock.AssignedPermissions")
		}
		return (*mm_results).aa1, (*mm_results).err
	}
	if mmAssignedPermissions.funcAssignedPermissions != nil {
		return mmAssignedPermissions.funcAssignedPermissions(ctx, token)
	}
	mmAssignedPermissions.t.Fatalf("Unexpected call to BackendMock.AssignedPermissions. %v %v", ctx, token)
	return
}

// AssignedPermissionsAfterCounter returns a count of finished BackendMock.AssignedPermissions invocations
func (mmAssignedPermissions *BackendMock) AssignedPermissionsAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAssignedPermissions.afterAssignedPermissionsCounter)
}

// AssignedPermissionsBeforeCounter returns a count of BackendMock.AssignedPermissions invocations
func (mmAssignedPermissions *BackendMock) AssignedPermissionsBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAssignedPermissions.beforeAssignedPermissionsCounter)
}

// Calls returns a list of arguments used in each call to BackendMock.AssignedPermissions.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmAssignedPermissions *mBackendMockAssignedPermissions) Calls() []*BackendMockAssignedPermissionsParams {
	mmAssignedPermissions.mutex.RLock()

	argCopy := make([]*BackendMockAssignedPermissionsParams, len(mmAssignedPermissions.callArgs))
	copy(argCopy, mmAssignedPermissions.callArgs)

	mmAssignedPermissions.mutex.RUnlock()

	return argCopy
}

// MinimockAssignedPermissionsDone returns true if the count of the AssignedPermissions invocations corresponds
// the number of defined expectations
func (m *BackendMock) MinimockAssignedPermissionsDone() bool {
	if m.AssignedPermissionsMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.AssignedPermissionsMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.AssignedPermissionsMock.invocationsDone()
}

// MinimockAssignedPermissionsInspect logs each unmet expectation
func (m *BackendMock) MinimockAssignedPermissionsInspect() {
	for _, e := range m.AssignedPermissionsMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to BackendMock.AssignedPermissions at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterAssignedPermissionsCounter := mm_atomic.LoadUint64(&m.afterAssignedPermissionsCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.AssignedPermissionsMock.defaultExpectation != nil && afterAssignedPermissionsCounter < 1 {
		if m.AssignedPermissionsMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to BackendMock.AssignedPermissions at\n%s", m.AssignedPermissionsMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to BackendMock.AssignedPermissions at\n%s with params: %#v", m.AssignedPermissionsMock.defaultExpectation.expectationOrigins.origin, *m.AssignedPermissionsMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcAssignedPermissions != nil && afterAssignedPermissionsCounter < 1 {
		m.t.Errorf("Expected call to BackendMock.AssignedPermissions at\n%s", m.funcAssignedPermissionsOrigin)
	}

	if !m.AssignedPermissionsMock.invocationsDone() && afterAssignedPermissionsCounter > 0 {
		m.t.Errorf("Expected %d calls to BackendMock.AssignedPermissions at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.AssignedPermissionsMock.expectedInvocations), m.AssignedPermissionsMock.expectedInvocationsOrigin, afterAssignedPermissionsCounter)
	}
}

type mBackendMockCompany struct {
	optional           bool
	mock               *BackendMock
	defaultExpectation *BackendMockCompanyExpectation
	expectations       []*BackendMockCompanyExpectation

	callArgs []*BackendMockCompanyParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// BackendMockCompanyExpectation specifies expectation struct of the Backend.Company
type BackendMockCompanyExpectation struct {
	mock               *BackendMock
	params             *BackendMockCompanyParams
	paramPtrs          *BackendMockCompanyParamPtrs
	expectationOrigins BackendMockCompanyExpectationOrigins
	results            *BackendMockCompanyResults
	returnOrigin       string
	Counter            uint64
}

// BackendMockCompanyParams contains parameters of the Backend.Company
type BackendMockCompanyParams struct {
	ctx   context.Context
	token string
	id    int64
}

// BackendMockCompanyParamPtrs contains pointers to parameters of the Backend.Company
type BackendMockCompanyParamPtrs struct {
	ctx   *context.Context
	token *string
	id    *int64
}

// BackendMockCompanyResults contains results of the Backend.Company
type BackendMockCompanyResults struct {
	c2  backend.Company
	err error
}

// BackendMockCompanyOrigins contains origins of expectations of the Backend.Company
type BackendMockCompanyExpectationOrigins struct {
	origin      string
	originCtx   string
	originToken string
	originId    string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmCompany *mBackendMockCompany) Optional() *mBackendMockCompany {
	mmCompany.optional = true
	return mmCompany
}

// Expect sets up expected params for Backend.Company
func (mmCompany *mBackendMockCompany) Expect(ctx context.Context, token string, id int64) *mBackendMockCompany {
	if mmCompany.mock.funcCompany != nil {
		mmCompany.mock.t.Fatalf("BackendMock.Company mock is already set by Set")
	}

	if mmCompany.defaultExpectation == nil {
		mmCompany.defaultExpectation = &BackendMockCompanyExpectation{}
	}

	if mmCompany.defaultExpectation.paramPtrs != nil {
		mmCompany.mock.t.Fatalf("BackendMock.Company mock is already set by ExpectParams functions")
	}

	mmCompany.defaultExpectation.params = &BackendMockCompanyParams{ctx, token, id}
	mmCompany.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmCompany.expectations {
		if minimock.Equal(e.params, mmCompany.defaultExpectation.params) {
			mmCompany.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmCompany.defaultExpectation.params)
		}
	}

	return mmCompany
}

// ExpectCtxParam1 sets up expected param ctx for Backend.Company
func (mmCompany *mBackendMockCompany) ExpectCtxParam1(ctx context.Context) *mBackendMockCompany {
	if mmCompany.mock.funcCompany != nil {
		mmCompany.mock.t.Fatalf("BackendMock.Company mock is already set by Set")
	}

	if mmCompany.defaultExpectation == nil {
		mmCompany.defaultExpectation = &BackendMockCompanyExpectation{}
	}

	if mmCompany.defaultExpectation.params != nil {
		mmCompany.mock.t.Fatalf("BackendMock.Company mock is already set by Expect")
	}

	if mmCompany.defaultExpectation.paramPtrs == nil {
		mmCompany.defaultExpectation.paramPtrs = &BackendMockCompanyParamPtrs{}
	}
	mmCompany.defaultExpectation.paramPtrs.ctx = &ctx
	mmCompany.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmCompany
}

// ExpectTokenParam2 sets up expected param token for Backend.Company
func (mmCompany *mBackendMockCompany) ExpectTokenParam2(token string) *mBackendMockCompany {
	if mmCompany.mock.funcCompany != nil {
		mmCompany.mock.t.Fatalf("BackendMock.Company mock is already set by Set")
	}

	if mmCompany.defaultExpectation == nil {
		mmCompany.defaultExpectation = &BackendMockCompanyExpectation{}
	}

	if mmCompany.defaultExpectation.params != nil {
		mmCompany.mock.t.Fatalf("BackendMock.Company mock is already set by Expect")
	}

	if mmCompany.defaultExpectation.paramPtrs == nil {
		mmCompany.defaultExpectation.paramPtrs = &BackendMockCompanyParamPtrs{}
	}
	mmCompany.defaultExpectation.paramPtrs.token = &token
	mmCompany.defaultExpectation.expectationOrigins.originToken = minimock.CallerInfo(1)

	return mmCompany
}

// ExpectIdParam3 sets up expected param id for Backend.Company
func (mmCompany *mBackendMockCompany) ExpectIdParam3(id int64) *mBackendMockCompany {
	if mmCompany.mock.funcCompany != nil {
		mmCompany.mock.t.Fatalf("BackendMock.Company mock is already set by Set")
	}

	if mmCompany.defaultExpectation == nil {
		mmCompany.defaultExpectation = &BackendMockCompanyExpectation{}
	}

	if mmCompany.defaultExpectation.params != nil {
		mmCompany.mock.t.Fatalf("BackendMock.Company mock is already set by Expect")
	}

	if mmCompany.defaultExpectation.paramPtrs == nil {
		mmCompany.defaultExpectation.paramPtrs = &BackendMockCompanyParamPtrs{}
	}
	mmCompany.defaultExpectation.paramPtrs.id = &id
	mmCompany.defaultExpectation.expectationOrigins.originId = minimock.CallerInfo(1)

	return mmCompany
}

// Inspect accepts an inspector function that has same arguments as the Backend.Company
func (mmCompany *mBackendMockCompany) Inspect(f func(ctx context.Context, token string, id int64)) *mBackendMockCompany {
	if mmCompany.mock.inspectFuncCompany != nil {
		mmCompany.mock.t.Fatalf("Inspect function is already set for BackendMock.Company")
	}

	mmCompany.mock.inspectFuncCompany = f

	return mmCompany
}

// Return sets up results that will be returned by Backend.Company
func (mmCompany *mBackendMockCompany) Return(c2 backend.Company, err error) *BackendMock {
	if mmCompany.mock.funcCompany != nil {
		mmCompany.mock.t.Fatalf("BackendMock.Company mock is already set by Set")
	}

	if mmCompany.defaultExpectation == nil {
		mmCompany.defaultExpectation = &BackendMockCompanyExpectation{mock: mmCompany.mock}
	}
	mmCompany.defaultExpectation.results = &BackendMockCompanyResults{c2, err}
	mmCompany.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmCompany.mock
}

// Set uses given function f to mock the Backend.Company method
func (mmCompany *mBackendMockCompany) Set(f func(ctx context.Context, token string, id int64) (c2 backend.Company, err error)) *BackendMock {
	if mmCompany.defaultExpectation != nil {
		mmCompany.mock.t.Fatalf("Default expectation is already set for the Backend.Company method")
	}

	if len(mmCompany.expectations) > 0 {
		mmCompany.mock.t.Fatalf("Some expectations are already set for the Backend.Company method")
	}

	mmCompany.mock.funcCompany = f
	mmCompany.mock.funcCompanyOrigin = minimock.CallerInfo(1)
	return mmCompany.mock
}

// When sets expectation for the Backend.Company which will trigger the result defined by the following
// Then helper
func (mmCompany *mBackendMockCompany) When(ctx context.Context, token string, id int64) *BackendMockCompanyExpectation {
	if mmCompany.mock.funcCompany != nil {
		mmCompany.mock.t.Fatalf("BackendMock.Company mock is already set by Set")
	}

	expectation := &BackendMockCompanyExpectation{
		mock:               mmCompany.mock,
		params:             &BackendMockCompanyParams{ctx, token, id},
		expectationOrigins: BackendMockCompanyExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmCompany.expectations = append(mmCompany.expectations, expectation)
	return expectation
}

// Then sets up Backend.Company return parameters for the expectation previously defined by the When method
func (e *BackendMockCompanyExpectation) Then(c2 backend.Company, err error) *BackendMock {
	e.results = &BackendMockCompanyResults{c2, err}
	return e.mock
}

// Times sets number of times Backend.Company should be invoked
func (mmCompany *mBackendMockCompany) Times(n uint64) *mBackendMockCompany {
	if n == 0 {
		mmCompany.mock.t.Fatalf("Times of BackendMock.Company mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmCompany.expectedInvocations, n)
	mmCompany.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmCompany
}

func (mmCompany *mBackendMockCompany) invocationsDone() bool {
	if len(mmCompany.expectations) == 0 && mmCompany.defaultExpectation == nil && mmCompany.mock.funcCompany == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmCompany.mock.afterCompanyCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmCompany.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Company implements mm_auth.Backend
func (mmCompany *BackendMock) Company(ctx context.Context, token string, id int64) (c2 backend.Company, err error) {
	mm_atomic.AddUint64(&mmCompany.beforeCompanyCounter, 1)
	defer mm_atomic.AddUint64(&mmCompany.afterCompanyCounter, 1)

	mmCompany.t.Helper()

	if mmCompany.inspectFuncCompany != nil {
		mmCompany.inspectFuncCompany(ctx, token, id)
	}

	mm_params := BackendMockCompanyParams{ctx, token, id}

	// Record call args
	mmCompany.CompanyMock.mutex.Lock()
	mmCompany.CompanyMock.callArgs = append(mmCompany.CompanyMock.callArgs, &mm_params)
	mmCompany.CompanyMock.mutex.Unlock()

	for _, e := range mmCompany.CompanyMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.c2, e.results.err
		}
	}

	if mmCompany.CompanyMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmCompany.CompanyMock.defaultExpectation.Counter, 1)
		mm_want := mmCompany.CompanyMock.defaultExpectation.params
		mm_want_ptrs := mmCompany.CompanyMock.defaultExpectation.paramPtrs

		mm_got := BackendMockCompanyParams{ctx, token, id}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmCompany.t.Errorf("BackendMock.Company got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCompany.CompanyMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.token != nil && !minimock.Equal(*mm_want_ptrs.token, mm_got.token) {
				mmCompany.t.Errorf("BackendMock.Company got unexpected parameter token, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCompany.CompanyMock.defaultExpectation.expectationOrigins.originToken, *mm_want_ptrs.token, mm_got.token, minimock.Diff(*mm_want_ptrs.token, mm_got.token))
			}

			if mm_want_ptrs.id != nil && !minimock.Equal(*mm_want_ptrs.id, mm_got.id) {
				mmCompany.t.Errorf("BackendMock.Company got unexpected parameter id, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmCompany.CompanyMock.defaultExpectation.expectationOrigins.originId, *mm_want_ptrs.id, mm_got.id, minimock.Diff(*mm_want_ptrs.id, mm_got.id))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmCompany.t.Errorf("BackendMock.Company got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmCompany.CompanyMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmCompany.CompanyMock.defaultExpectation.results
		if mm_results == nil {
			mmCompany.t.Fatal("No results are set for the BackendMock.Company")
		}
		return (*mm_results).c2, (*mm_results).err
	}
	if mmCompany.funcCompany != nil {
		return mmCompany.funcCompany(ctx, token, id)
	}
	mmCompany.t.Fatalf("Unexpected call to BackendMock.Company. %v %v %v", ctx, token, id)
	return
}

// CompanyAfterCounter returns a count of finished BackendMock.Company invocations
func (mmCompany *BackendMock) CompanyAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCompany.afterCompanyCounter)
}

// CompanyBeforeCounter returns a count of BackendMock.Company invocations
func (mmCompany *BackendMock) CompanyBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCompany.beforeCompanyCounter)
}

// Calls returns a list of arguments used in each call to BackendMock.Company.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmCompany *mBackendMockCompany) Calls() []*BackendMockCompanyParams {
	mmCompany.mutex.RLock()

	argCopy := make([]*BackendMockCompanyParams, len(mmCompany.callArgs))
	copy(argCopy, mmCompany.callArgs)

	mmCompany.mutex.RUnlock()

	return argCopy
}

// MinimockCompanyDone returns true if the count of the Company invocations corresponds
// the number of defined expectations
func (m *BackendMock) MinimockCompanyDone() bool {
	if m.CompanyMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.CompanyMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.CompanyMock.invocationsDone()
}

// MinimockCompanyInspect logs each unmet expectation
func (m *BackendMock) MinimockCompanyInspect() {
	for _, e := range m.CompanyMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to BackendMock.Company at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterCompanyCounter := mm_atomic.LoadUint64(&m.afterCompanyCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.CompanyMock.defaultExpectation != nil && afterCompanyCounter < 1 {
		if m.CompanyMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to BackendMock.Company at\n%s", m.CompanyMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to BackendMock.Company at\n%s with params: %#v", m.CompanyMock.defaultExpectation.expectationOrigins.origin, *m.CompanyMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcCompany != nil && afterCompanyCounter < 1 {
		m.t.Errorf("Expected call to BackendMock.Company at\n%s", m.funcCompanyOrigin)
	}

	if !m.CompanyMock.invocationsDone() && afterCompanyCounter > 0 {
		m.t.Errorf("Expected %d calls to BackendMock.Company at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.CompanyMock.expectedInvocations), m.CompanyMock.expectedInvocationsOrigin, afterCompanyCounter)
	}
}

type mBackendMockEmployeeInfo struct {
	optional           bool
	mock               *BackendMock
	defaultExpectation *BackendMockEmployeeInfoExpectation
	expectations       []*BackendMockEmployeeInfoExpectation

	callArgs []*BackendMockEmployeeInfoParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// BackendMockEmployeeInfoExpectation specifies expectation struct of the Backend.EmployeeInfo
type BackendMockEmployeeInfoExpectation struct {
	mock               *BackendMock
	params             *BackendMockEmployeeInfoParams
	paramPtrs          *BackendMockEmployeeInfoParamPtrs
	expectationOrigins BackendMockEmployeeInfoExpectationOrigins
	results            *BackendMockEmployeeInfoResults
	returnOrigin       string
	Counter            uint64
}

// BackendMockEmployeeInfoParams contains parameters of the Backend.EmployeeInfo
type BackendMockEmployeeInfoParams struct {
	ctx   context.Context
	token string
}

// BackendMockEmployeeInfoParamPtrs contains pointers to parameters of the Backend.EmployeeInfo
type BackendMockEmployeeInfoParamPtrs struct {
	ctx   *context.Context
	token *string
}

// BackendMockEmployeeInfoResults contains results of the Backend.EmployeeInfo
type BackendMockEmployeeInfoResults struct {
	e1  backend.Employee
	err error
}

// BackendMockEmployeeInfoOrigins contains origins of expectations of the Backend.EmployeeInfo
type BackendMockEmployeeInfoExpectationOrigins struct {
	origin      string
	originCtx   string
	originToken string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmEmployeeInfo *mBackendMockEmployeeInfo) Optional() *mBackendMockEmployeeInfo {
	mmEmployeeInfo.optional = true
	return mmEmployeeInfo
}

// Expect sets up expected params for Backend.EmployeeInfo
func (mmEmployeeInfo *mBackendMockEmployeeInfo) Expect(ctx context.Context, token string) *mBackendMockEmployeeInfo {
	if mmEmployeeInfo.mock.funcEmployeeInfo != nil {
		mmEmployeeInfo.mock.t.Fatalf("BackendMock.EmployeeInfo mock is already set by Set")
	}

	if mmEmployeeInfo.defaultExpectation == nil {
		mmEmployeeInfo.defaultExpectation = &BackendMockEmployeeInfoExpectation{}
	}

	if mmEmployeeInfo.defaultExpectation.paramPtrs != nil {
		mmEmployeeInfo.mock.t.Fatalf("BackendMock.EmployeeInfo mock is already set by ExpectParams functions")
	}

	mmEmployeeInfo.defaultExpectation.params = &BackendMockEmployeeInfoParams{ctx, token}
	mmEmployeeInfo.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmEmployeeInfo.expectations {
		if minimock.Equal(e.params, mmEmployeeInfo.defaultExpectation.params) {
			mmEmployeeInfo.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmEmployeeInfo.defaultExpectation.params)
		}
	}

	return mmEmployeeInfo
}

// ExpectCtxParam1 sets up expected param ctx for Backend.EmployeeInfo
func (mmEmployeeInfo *mBackendMockEmployeeInfo) ExpectCtxParam1(ctx context.Context) *mBackendMockEmployeeInfo {
	if mmEmployeeInfo.mock.funcEmployeeInfo != nil {
		mmEmployeeInfo.mock.t.Fatalf("BackendMock.EmployeeInfo mock is already set by Set")
	}

	if mmEmployeeInfo.defaultExpectation == nil {
		mmEmployeeInfo.defaultExpectation = &BackendMockEmployeeInfoExpectation{}
	}

	if mmEmployeeInfo.defaultExpectation.params != nil {
		mmEmployeeInfo.mock.t.Fatalf("BackendMock.EmployeeInfo mock is already set by Expect")
	}

	if mmEmployeeInfo.defaultExpectation.paramPtrs == nil {
		mmEmployeeInfo.defaultExpectation.paramPtrs = &BackendMockEmployeeInfoParamPtrs{}
	}
	mmEmployeeInfo.defaultExpectation.paramPtrs.ctx = &ctx
	mmEmployeeInfo.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmEmployeeInfo
}

// ExpectTokenParam2 sets up expected param token for Backend.EmployeeInfo
func (mmEmployeeInfo *mBackendMockEmployeeInfo) ExpectTokenParam2(token string) *mBackendMockEmployeeInfo {
	if mmEmployeeInfo.mock.funcEmployeeInfo != nil {
		mmEmployeeInfo.mock.t.Fatalf("BackendMock.EmployeeInfo mock is already set by Set")
	}

	if mmEmployeeInfo.defaultExpectation == nil {
		mmEmployeeInfo.defaultExpectation = &BackendMockEmployeeInfoExpectation{}
	}

	if mmEmployeeInfo.defaultExpectation.params != nil {
		mmEmployeeInfo.mock.t.Fatalf("BackendMock.EmployeeInfo mock is already set by Expect")
	}

	if mmEmployeeInfo.defaultExpectation.paramPtrs == nil {
		mmEmployeeInfo.defaultExpectation.paramPtrs = &BackendMockEmployeeInfoParamPtrs{}
	}
	mmEmployeeInfo.defaultExpectation.paramPtrs.token = &token
	mmEmployeeInfo.defaultExpectation.expectationOrigins.originToken = minimock.CallerInfo(1)

	return mmEmployeeInfo
}

// Inspect accepts an inspector function that has same arguments as the Backend.EmployeeInfo
func (mmEmployeeInfo *mBackendMockEmployeeInfo) Inspect(f func(ctx context.Context, token string)) *mBackendMockEmployeeInfo {
	if mmEmployeeInfo.mock.inspectFuncEmployeeInfo != nil {
		mmEmployeeInfo.mock.t.Fatalf("Inspect function is already set for BackendMock.EmployeeInfo")
	}

	mmEmployeeInfo.mock.inspectFuncEmployeeInfo = f

	return mmEmployeeInfo
}

// Return sets up results that will be returned by Backend.EmployeeInfo
func (mmEmployeeInfo *mBackendMockEmployeeInfo) Return(e1 backend.Employee, err error) *BackendMock {
	if mmEmployeeInfo.mock.funcEmployeeInfo != nil {
		mmEmployeeInfo.mock.t.Fatalf("BackendMock.EmployeeInfo mock is already set by Set")
	}

	if mmEmployeeInfo.defaultExpectation == nil {
		mmEmployeeInfo.defaultExpectation = &BackendMockEmployeeInfoExpectation{mock: mmEmployeeInfo.mock}
	}
	mmEmployeeInfo.defaultExpectation.results = &BackendMockEmployeeInfoResults{e1, err}
	mmEmployeeInfo.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmEmployeeInfo.mock
}

// Set uses given function f to mock the Backend.EmployeeInfo method
func (mmEmployeeInfo *mBackendMockEmployeeInfo) Set(f func(ctx context.Context, token string) (e1 backend.Employee, err error)) *BackendMock {
	if mmEmployeeInfo.defaultExpectation != nil {
		mmEmployeeInfo.mock.t.Fatalf("Default expectation is already set for the Backend.EmployeeInfo method")
	}

	if len(mmEmployeeInfo.expectations) > 0 {
		mmEmployeeInfo.mock.t.Fatalf("Some expectations are already set for the Backend.EmployeeInfo method")
	}

	mmEmployeeInfo.mock.funcEmployeeInfo = f
	mmEmployeeInfo.mock.funcEmployeeInfoOrigin = minimock.CallerInfo(1)
	return mmEmployeeInfo.mock
}

// When sets expectation for the Backend.EmployeeInfo which will trigger the result defined by the following
// Then helper
func (mmEmployeeInfo *mBackendMockEmployeeInfo) When(ctx context.Context, token string) *BackendMockEmployeeInfoExpectation {
	if mmEmployeeInfo.mock.funcEmployeeInfo != nil {
		mmEmployeeInfo.mock.t.Fatalf("BackendMock.EmployeeInfo mock is already set by Set")
	}

	expectation := &BackendMockEmployeeInfoExpectation{
		mock:               mmEmployeeInfo.mock,
		params:             &BackendMockEmployeeInfoParams{ctx, token},
		expectationOrigins: BackendMockEmployeeInfoExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmEmployeeInfo.expectations = append(mmEmployeeInfo.expectations, expectation)
	return expectation
}

// Then sets up Backend.EmployeeInfo return parameters for the expectation previously defined by the When method
func (e *BackendMockEmployeeInfoExpectation) Then(e1 backend.Employee, err error) *BackendMock {
	e.results = &BackendMockEmployeeInfoResults{e1, err}
	return e.mock
}

// Times sets number of times Backend.EmployeeInfo should be invoked
func (mmEmployeeInfo *mBackendMockEmployeeInfo) Times(n uint64) *mBackendMockEmployeeInfo {
	if n == 0 {
		mmEmployeeInfo.mock.t.Fatalf("Times of BackendMock.EmployeeInfo mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmEmployeeInfo.expectedInvocations, n)
	mmEmployeeInfo.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmEmployeeInfo
}

func (mmEmployeeInfo *mBackendMockEmployeeInfo) invocationsDone() bool {
	if len(mmEmployeeInfo.expectations) == 0 && mmEmployeeInfo.defaultExpectation == nil && mmEmployeeInfo.mock.funcEmployeeInfo == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmEmployeeInfo.mock.afterEmployeeInfoCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmEmployeeInfo.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// EmployeeInfo implements mm_auth.Backend
func (mmEmployeeInfo *BackendMock) EmployeeInfo(ctx context.Context, token string) (e1 backend.Employee, err error) {
	mm_atomic.AddUint64(&mmEmployeeInfo.beforeEmployeeInfoCounter, 1)
	defer mm_atomic.AddUint64(&mmEmployeeInfo.afterEmployeeInfoCounter, 1)

	mmEmployeeInfo.t.Helper()

	if mmEmployeeInfo.inspectFuncEmployeeInfo != nil {
		mmEmployeeInfo.inspectFuncEmployeeInfo(ctx, token)
	}

	mm_params := BackendMockEmployeeInfoParams{ctx, token}

	// Record call args
	mmEmployeeInfo.EmployeeInfoMock.mutex.Lock()
	mmEmployeeInfo.EmployeeInfoMock.callArgs = append(mmEmployeeInfo.EmployeeInfoMock.callArgs, &mm_params)
	mmEmployeeInfo.EmployeeInfoMock.mutex.Unlock()

	for _, e := range mmEmployeeInfo.EmployeeInfoMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.e1, e.results.err
		}
	}

	if mmEmployeeInfo.EmployeeInfoMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmEmployeeInfo.EmployeeInfoMock.defaultExpectation.Counter, 1)
		mm_want := mmEmployeeInfo.EmployeeInfoMock.defaultExpectation.params
		mm_want_ptrs := mmEmployeeInfo.EmployeeInfoMock.defaultExpectation.paramPtrs

		mm_got := BackendMockEmployeeInfoParams{ctx, token}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmEmployeeInfo.t.Errorf("BackendMock.EmployeeInfo got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmEmployeeInfo.EmployeeInfoMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.token != nil && !minimock.Equal(*mm_want_ptrs.token, mm_got.token) {
				mmEmployeeInfo.t.Errorf("BackendMock.EmployeeInfo got unexpected parameter token, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmEmployeeInfo.EmployeeInfoMock.defaultExpectation.expectationOrigins.originToken, *mm_want_ptrs.token, mm_got.token, minimock.Diff(*mm_want_ptrs.token, mm_got.token))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmEmployeeInfo.t.Errorf("BackendMock.EmployeeInfo got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmEmployeeInfo.EmployeeInfoMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmEmployeeInfo.EmployeeInfoMock.defaultExpectation.results
		if mm_results == nil {
			mmEmployeeInfo.t.Fatal("No results are set for the BackendMock.EmployeeInfo")
		}
		return (*mm_results).e1, (*mm_results).err
	}
	if mmEmployeeInfo.funcEmployeeInfo != nil {
		return mmEmployeeInfo.funcEmployeeInfo(ctx, token)
	}
	mmEmployeeInfo.t.Fatalf("Unexpected call to BackendMock.EmployeeInfo. %v %v", ctx, token)
	return
}

// EmployeeInfoAfterCounter returns a count of finished BackendMock.EmployeeInfo invocations
func (mmEmployeeInfo *BackendMock) EmployeeInfoAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmEmployeeInfo.afterEmployeeInfoCounter)
}

// EmployeeInfoBeforeCounter returns a count of BackendMock.EmployeeInfo invocations
func (mmEmployeeInfo *BackendMock) EmployeeInfoBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmEmployeeInfo.beforeEmployeeInfoCounter)
}

// Calls returns a list of arguments used in each call to BackendMock.EmployeeInfo.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmEmployeeInfo *mBackendMockEmployeeInfo) Calls() []*BackendMockEmployeeInfoParams {
	mmEmployeeInfo.mutex.RLock()

	argCopy := make([]*BackendMockEmployeeInfoParams, len(mmEmployeeInfo.callArgs))
	copy(argCopy, mmEmployeeInfo.callArgs)

	mmEmployeeInfo.mutex.RUnlock()

	return argCopy
}

// MinimockEmployeeInfoDone returns true if the count of the EmployeeInfo invocations corresponds
// the number of defined expectations
func (m *BackendMock) MinimockEmployeeInfoDone() bool {
	if m.EmployeeInfoMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.EmployeeInfoMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.EmployeeInfoMock.invocationsDone()
}

// MinimockEmployeeInfoInspect logs each unmet expectation
func (m *BackendMock) MinimockEmployeeInfoInspect() {
	for _, e := range m.EmployeeInfoMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to BackendMock.EmployeeInfo at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterEmployeeInfoCounter := mm_atomic.LoadUint64(&m.afterEmployeeInfoCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.EmployeeInfoMock.defaultExpectation != nil && afterEmployeeInfoCounter < 1 {
		if m.EmployeeInfoMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to BackendMock.EmployeeInfo at\n%s", m.EmployeeInfoMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to BackendMock.EmployeeInfo at\n%s with params: %#v", m.EmployeeInfoMock.defaultExpectation.expectationOrigins.origin, *m.EmployeeInfoMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcEmployeeInfo != nil && afterEmployeeInfoCounter < 1 {
		m.t.Errorf("Expected call to BackendMock.EmployeeInfo at\n%s", m.funcEmployeeInfoOrigin)
	}

	if !m.EmployeeInfoMock.invocationsDone() && afterEmployeeInfoCounter > 0 {
		m.t.Errorf("Expected %d calls to BackendMock.EmployeeInfo at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.EmployeeInfoMock.expectedInvocations), m.EmployeeInfoMock.expectedInvocationsOrigin, afterEmployeeInfoCounter)
	}
}

type mBackendMockLogin struct {
	optional           bool
	mock               *BackendMock
	defaultExpectation *BackendMockLoginExpectation
	expectations       []*BackendMockLoginExpectation

	callArgs []*BackendMockLoginParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// BackendMockLoginExpectation specifies expectation struct of the Backend.Login
type BackendMockLoginExpectation struct {
	mock               *BackendMock
	params             *BackendMockLoginParams
	paramPtrs          *BackendMockLoginParamPtrs
	expectationOrigins BackendMockLoginExpectationOrigins
	results            *BackendMockLoginResults
	returnOrigin       string
	Counter            uint64
}

// BackendMockLoginParams contains parameters of the Backend.Login
type BackendMockLoginParams struct {
	ctx      context.Context
	username string
	password string
}

// BackendMockLoginParamPtrs contains pointers to parameters of the Backend.Login
type BackendMockLoginParamPtrs struct {
	ctx      *context.Context
	username *string
	password *string
}

// BackendMockLoginResults contains results of the Backend.Login
type BackendMockLoginResults struct {
	t1  backend.TokenPair
	err error
}

// BackendMockLoginOrigins contains origins of expectations of the Backend.Login
type BackendMockLoginExpectationOrigins struct {
	origin         string
	originCtx      string
	originUsername string
	originPassword string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmLogin *mBackendMockLogin) Optional() *mBackendMockLogin {
	mmLogin.optional = true
	return mmLogin
}

// Expect sets up expected params for Backend.Login
func (mmLogin *mBackendMockLogin) Expect(ctx context.Context, username string, password string) *mBackendMockLogin {
	if mmLogin.mock.funcLogin != nil {
		mmLogin.mock.t.Fatalf("BackendMock.Login mock is already set by Set")
	}

	if mmLogin.defaultExpectation == nil {
		mmLogin.defaultExpectation = &BackendMockLoginExpectation{}
	}

	if mmLogin.defaultExpectation.paramPtrs != nil {
		mmLogin.mock.t.Fatalf("BackendMock.Login mock is already set by ExpectParams functions")
	}

	mmLogin.defaultExpectation.params = &BackendMockLoginParams{ctx, username, password}
	mmLogin.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmLogin.expectations {
		if minimock.Equal(e.params, mmLogin.defaultExpectation.params) {
			mmLogin.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmLogin.defaultExpectation.params)
		}
	}

	return mmLogin
}

// ExpectCtxParam1 sets up expected param ctx for Backend.Login
func (mmLogin *mBackendMockLogin) ExpectCtxParam1(ctx context.Context) *mBackendMockLogin {
	if mmLogin.mock.funcLogin != nil {
		mmLogin.mock.t.Fatalf("BackendMock.Login mock is already set by Set")
	}

	if mmLogin.defaultExpectation == nil {
		mmLogin.defaultExpectation = &BackendMockLoginExpectation{}
	}

	if mmLogin.defaultExpectation.params != nil {
		mmLogin.mock.t.Fatalf("BackendMock.Login mock is already set by Expect")
	}

	if mmLogin.defaultExpectation.paramPtrs == nil {
		mmLogin.defaultExpectation.paramPtrs = &BackendMockLoginParamPtrs{}
	}
	mmLogin.defaultExpectation.paramPtrs.ctx = &ctx
	mmLogin.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmLogin
}

// ExpectUsernameParam2 sets up expected param username for Backend.Login
func (mmLogin *mBackendMockLogin) ExpectUsernameParam2(username string) *mBackendMockLogin {
	if mmLogin.mock.funcLogin != nil {
		mmLogin.mock.t.Fatalf("BackendMock.Login mock is already set by Set")
	}

	if mmLogin.defaultExpectation == nil {
		mmLogin.defaultExpectation = &BackendMockLoginExpectation{}
	}

	if mmLogin.defaultExpectation.params != nil {
		mmLogin.mock.t.Fatalf("BackendMock.Login mock is already set by Expect")
	}

	if mmLogin.defaultExpectation.paramPtrs == nil {
		mmLogin.defaultExpectation.paramPtrs = &BackendMockLoginParamPtrs{}
	}
	mmLogin.defaultExpectation.paramPtrs.username = &username
	mmLogin.defaultExpectation.expectationOrigins.originUsername = minimock.CallerInfo(1)

	return mmLogin
}

// ExpectPasswordParam3 sets up expected param password for Backend.Login
func (mmLogin *mBackendMockLogin) ExpectPasswordParam3(password string) *mBackendMockLogin {
	if mmLogin.mock.funcLogin != nil {
		mmLogin.mock.t.Fatalf("BackendMock.Login mock is already set by Set")
	}

	if mmLogin.defaultExpectation == nil {
		mmLogin.defaultExpectation = &BackendMockLoginExpectation{}
	}

	if mmLogin.defaultExpectation.params != nil {
		mmLogin.mock.t.Fatalf("BackendMock.Login mock is already set by Expect")
	}

	if mmLogin.defaultExpectation.paramPtrs == nil {
		mmLogin.defaultExpectation.paramPtrs = &BackendMockLoginParamPtrs{}
	}
	mmLogin.defaultExpectation.paramPtrs.password = &password
	mmLogin.defaultExpectation.expectationOrigins.originPassword = minimock.CallerInfo(1)

	return mmLogin
}

// Inspect accepts an inspector function that has same arguments as the Backend.Login
func (mmLogin *mBackendMockLogin) Inspect(f func(ctx context.Context, username string, password string)) *mBackendMockLogin {
	if mmLogin.mock.inspectFuncLogin != nil {
		mmLogin.mock.t.Fatalf("Inspect function is already set for BackendMock.Login")
	}

	mmLogin.mock.inspectFuncLogin = f

	return mmLogin
}

// Return sets up results that will be returned by Backend.Login
func (mmLogin *mBackendMockLogin) Return(t1 backend.TokenPair, err error) *BackendMock {
	if mmLogin.mock.funcLogin != nil {
		mmLogin.mock.t.Fatalf("BackendMock.Login mock is already set by Set")
	}

	if mmLogin.defaultExpectation == nil {
		mmLogin.defaultExpectation = &BackendMockLoginExpectation{mock: mmLogin.mock}
	}
	mmLogin.defaultExpectation.results = &BackendMockLoginResults{t1, err}
	mmLogin.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmLogin.mock
}

// Set uses given function f to mock the Backend.Login method
func (mmLogin *mBackendMockLogin) Set(f func(ctx context.Context, username string, password string) (t1 backend.TokenPair, err error)) *BackendMock {
	if mmLogin.defaultExpectation != nil {
		mmLogin.mock.t.Fatalf("Default expectation is already set for the Backend.Login method")
	}

	if len(mmLogin.expectations) > 0 {
		mmLogin.mock.t.Fatalf("Some expectations are already set for the Backend.Login method")
	}

	mmLogin.mock.funcLogin = f
	mmLogin.mock.funcLoginOrigin = minimock.CallerInfo(1)
	return mmLogin.mock
}

// When sets expectation for the Backend.Login which will trigger the result defined by the following
// Then helper
func (mmLogin *mBackendMockLogin) When(ctx context.Context, username string, password string) *BackendMockLoginExpectation {
	if mmLogin.mock.funcLogin != nil {
		mmLogin.mock.t.Fatalf("BackendMock.Login mock is already set by Set")
	}

	expectation := &BackendMockLoginExpectation{
		mock:               mmLogin.mock,
		params:             &BackendMockLoginParams{ctx, username, password},
		expectationOrigins: BackendMockLoginExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmLogin.expectations = append(mmLogin.expectations, expectation)
	return expectation
}

// Then sets up Backend.Login return parameters for the expectation previously defined by the When method
func (e *BackendMockLoginExpectation) Then(t1 backend.TokenPair, err error) *BackendMock {
	e.results = &BackendMockLoginResults{t1, err}
	return e.mock
}

// Times sets number of times Backend.Login should be invoked
func (mmLogin *mBackendMockLogin) Times(n uint64) *mBackendMockLogin {
	if n == 0 {
		mmLogin.mock.t.Fatalf("Times of BackendMock.Login mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmLogin.expectedInvocations, n)
	mmLogin.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmLogin
}

func (mmLogin *mBackendMockLogin) invocationsDone() bool {
	if len(mmLogin.expectations) == 0 && mmLogin.defaultExpectation == nil && mmLogin.mock.funcLogin == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmLogin.mock.afterLoginCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmLogin.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Login implements mm_auth.Backend
func (mmLogin *BackendMock) Login(ctx context.Context, username string, password string) (t1 backend.TokenPair, err error) {
	mm_atomic.AddUint64(&mmLogin.beforeLoginCounter, 1)
	defer mm_atomic.AddUint64(&mmLogin.afterLoginCounter, 1)

	mmLogin.t.Helper()

	if mmLogin.inspectFuncLogin != nil {
		mmLogin.inspectFuncLogin(ctx, username, password)
	}

	mm_params := BackendMockLoginParams{ctx, username, password}

	// Record call args
	mmLogin.LoginMock.mutex.Lock()
	mmLogin.LoginMock.callArgs = append(mmLogin.LoginMock.callArgs, &mm_params)
	mmLogin.LoginMock.mutex.Unlock()

	for _, e := range mmLogin.LoginMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.t1, e.results.err
		}
	}

	if mmLogin.LoginMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmLogin.LoginMock.defaultExpectation.Counter, 1)
		mm_want := mmLogin.LoginMock.defaultExpectation.params
		mm_want_ptrs := mmLogin.LoginMock.defaultExpectation.paramPtrs

		mm_got := BackendMockLoginParams{ctx, username, password}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmLogin.t.Errorf("BackendMock.Login got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmLogin.LoginMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.username != nil && !minimock.Equal(*mm_want_ptrs.username, mm_got.username) {
				mmLogin.t.Errorf("BackendMock.Login got unexpected parameter username, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmLogin.LoginMock.defaultExpectation.expectationOrigins.originUsername, *mm_want_ptrs.username, mm_got.username, minimock.Diff(*mm_want_ptrs.username, mm_got.username))
			}

			if mm_want_ptrs.password != nil && !minimock.Equal(*mm_want_ptrs.password, mm_got.password) {
				mmLogin.t.Errorf("BackendMock.Login got unexpected parameter password, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmLogin.LoginMock.defaultExpectation.expectationOrigins.originPassword, *mm_want_ptrs.password, mm_got.password, minimock.Diff(*mm_want_ptrs.password, mm_got.password))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmLogin.t.Errorf("BackendMock.Login got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmLogin.LoginMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmLogin.LoginMock.defaultExpectation.results
		if mm_results == nil {
			mmLogin.t.Fatal("No results are set for the BackendMock.Login")
		}
		return (*mm_results).t1, (*mm_results).err
	}
	if mmLogin.funcLogin != nil {
		return mmLogin.funcLogin(ctx, username, password)
	}
	mmLogin.t.Fatalf("Unexpected call to BackendMock.Login. %v %v %v", ctx, username, password)
	return
}

// LoginAfterCounter returns a count of finished BackendMock.Login invocations
func (mmLogin *BackendMock) LoginAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLogin.afterLoginCounter)
}

// LoginBeforeCounter returns a count of BackendMock.Login invocations
func (mmLogin *BackendMock) LoginBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLogin.beforeLoginCounter)
}

// Calls returns a list of arguments used in each call to BackendMock.Login.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmLogin *mBackendMockLogin) Calls() []*BackendMockLoginParams {
	mmLogin.mutex.RLock()

	argCopy := make([]*BackendMockLoginParams, len(mmLogin.callArgs))
	copy(argCopy, mmLogin.callArgs)

	mmLogin.mutex.RUnlock()

	return argCopy
}

// MinimockLoginDone returns true if the count of the Login invocations corresponds
// the number of defined expectations
func (m *BackendMock) MinimockLoginDone() bool {
	if m.LoginMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.LoginMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.LoginMock.invocationsDone()
}

// MinimockLoginInspect logs each unmet expectation
func (m *BackendMock) MinimockLoginInspect() {
	for _, e := range m.LoginMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to BackendMock.Login at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterLoginCounter := mm_atomic.LoadUint64(&m.afterLoginCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.LoginMock.defaultExpectation != nil && afterLoginCounter < 1 {
		if m.LoginMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to BackendMock.Login at\n%s", m.LoginMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to BackendMock.Login at\n%s with params: %#v", m.LoginMock.defaultExpectation.expectationOrigins.origin, *m.LoginMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcLogin != nil && afterLoginCounter < 1 {
		m.t.Errorf("Expected call to BackendMock.Login at\n%s", m.funcLoginOrigin)
	}

	if !m.LoginMock.invocationsDone() && afterLoginCounter > 0 {
		m.t.Errorf("Expected %d calls to BackendMock.Login at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.LoginMock.expectedInvocations), m.LoginMock.expectedInvocationsOrigin, afterLoginCounter)
	}
}

type mBackendMockPermissionCatalog struct {
	optional           bool
	mock               *BackendMock
	defaultExpectation *BackendMockPermissionCatalogExpectation
	expectations       []*BackendMockPermissionCatalogExpectation

	callArgs []*BackendMockPermissionCatalogParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// BackendMockPermissionCatalogExpectation specifies expectation struct of the Backend.PermissionCatalog
type BackendMockPermissionCatalogExpectation struct {
	mock               *BackendMock
	params             *BackendMockPermissionCatalogParams
	paramPtrs          *BackendMockPermissionCatalogParamPtrs
	expectationOrigins BackendMockPermissionCatalogExpectationOrigins
	results            *BackendMockPermissionCatalogResults
	returnOrigin       string
	Counter            uint64
}

// BackendMockPermissionCatalogParams contains parameters of the Backend.PermissionCatalog
type BackendMockPermissionCatalogParams struct {
	ctx   context.Context
	token string
}

// BackendMockPermissionCatalogParamPtrs contains pointers to parameters of the Backend.PermissionCatalog
type BackendMockPermissionCatalogParamPtrs struct {
	ctx   *context.Context
	token *string
}

// BackendMockPermissionCatalogResults contains results of the Backend.PermissionCatalog
type BackendMockPermissionCatalogResults struct {
	pa1 []backend.Permission
	err error
}

// BackendMockPermissionCatalogOrigins contains origins of expectations of the Backend.PermissionCatalog
type BackendMockPermissionCatalogExpectationOrigins struct {
	origin      string
	originCtx   string
	originToken string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmPermissionCatalog *mBackendMockPermissionCatalog) Optional() *mBackendMockPermissionCatalog {
	mmPermissionCatalog.optional = true
	return mmPermissionCatalog
}

// Expect sets up expected params for Backend.PermissionCatalog
func (mmPermissionCatalog *mBackendMockPermissionCatalog) Expect(ctx context.Context, token string) *mBackendMockPermissionCatalog {
	if mmPermissionCatalog.mock.funcPermissionCatalog != nil {
		mmPermissionCatalog.mock.t.Fatalf("BackendMock.PermissionCatalog mock is already set by Set")
	}

	if mmPermissionCatalog.defaultExpectation == nil {
		mmPermissionCatalog.defaultExpectation = &BackendMockPermissionCatalogExpectation{}
	}

	if mmPermissionCatalog.defaultExpectation.paramPtrs != nil {
		mmPermissionCatalog.mock.t.Fatalf("BackendMock.PermissionCatalog mock is already set by ExpectParams functions")
	}

	mmPermissionCatalog.defaultExpectation.params = &BackendMockPermissionCatalogParams{ctx, token}
	mmPermissionCatalog.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmPermissionCatalog.expectations {
		if minimock.Equal(e.params, mmPermissionCatalog.defaultExpectation.params) {
			mmPermissionCatalog.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmPermissionCatalog.defaultExpectation.params)
		}
	}

	return mmPermissionCatalog
}

// ExpectCtxParam1 sets up expected param ctx for Backend.PermissionCatalog
func (mmPermissionCatalog *mBackendMockPermissionCatalog) ExpectCtxParam1(ctx context.Context) *mBackendMockPermissionCatalog {
	if mmPermissionCatalog.mock.funcPermissionCatalog != nil {
		mmPermissionCatalog.mock.t.Fatalf("BackendMock.PermissionCatalog mock is already set by Set")
	}

	if mmPermissionCatalog.defaultExpectation == nil {
		mmPermissionCatalog.defaultExpectation = &BackendMockPermissionCatalogExpectation{}
	}

	if mmPermissionCatalog.defaultExpectation.params != nil {
		mmPermissionCatalog.mock.t.Fatalf("BackendMock.PermissionCatalog mock is already set by Expect")
	}

	if mmPermissionCatalog.defaultExpectation.paramPtrs == nil {
		mmPermissionCatalog.defaultExpectation.paramPtrs = &BackendMockPermissionCatalogParamPtrs{}
	}
	mmPermissionCatalog.defaultExpectation.paramPtrs.ctx = &ctx
	mmPermissionCatalog.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmPermissionCatalog
}

// ExpectTokenParam2 sets up expected param token for Backend.PermissionCatalog
func (mmPermissionCatalog *mBackendMockPermissionCatalog) ExpectTokenParam2(token string) *mBackendMockPermissionCatalog {
	if mmPermissionCatalog.mock.funcPermissionCatalog != nil {
		mmPermissionCatalog.mock.t.Fatalf("BackendMock.PermissionCatalog mock is already set by Set")
	}

	if mmPermissionCatalog.defaultExpectation == nil {
		mmPermissionCatalog.defaultExpectation = &BackendMockPermissionCatalogExpectation{}
	}

	if mmPermissionCatalog.defaultExpectation.params != nil {
		mmPermissionCatalog.mock.t.Fatalf("BackendMock.PermissionCatalog mock is already set by Expect")
	}

	if mmPermissionCatalog.defaultExpectation.paramPtrs == nil {
		mmPermissionCatalog.defaultExpectation.paramPtrs = &BackendMockPermissionCatalogParamPtrs{}
	}
	mmPermissionCatalog.defaultExpectation.paramPtrs.token = &token
	mmPermissionCatalog.defaultExpectation.expectationOrigins.originToken = minimock.CallerInfo(1)

	return mmPermissionCatalog
}

// Inspect accepts an inspector function that has same arguments as the Backend.PermissionCatalog
func (mmPermissionCatalog *mBackendMockPermissionCatalog) Inspect(f func(ctx context.Context, token string)) *mBackendMockPermissionCatalog {
	if mmPermissionCatalog.mock.inspectFuncPermissionCatalog != nil {
		mmPermissionCatalog.mock.t.Fatalf("Inspect function is already set for BackendMock.PermissionCatalog")
	}

	mmPermissionCatalog.mock.inspectFuncPermissionCatalog = f

	return mmPermissionCatalog
}

// Return sets up results that will be returned by Backend.PermissionCatalog
func (mmPermissionCatalog *mBackendMockPermissionCatalog) Return(pa1 []backend.Permission, err error) *BackendMock {
	if mmPermissionCatalog.mock.funcPermissionCatalog != nil {
		mmPermissionCatalog.mock.t.Fatalf("BackendMock.PermissionCatalog mock is already set by Set")
	}

	if mmPermissionCatalog.defaultExpectation == nil {
		mmPermissionCatalog.defaultExpectation = &BackendMockPermissionCatalogExpectation{mock: mmPermissionCatalog.mock}
	}
	mmPermissionCatalog.defaultExpectation.results = &BackendMockPermissionCatalogResults{pa1, err}
	mmPermissionCatalog.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmPermissionCatalog.mock
}

// Set uses given function f to mock the Backend.PermissionCatalog method
func (mmPermissionCatalog *mBackendMockPermissionCatalog) Set(f func(ctx context.Context, token string) (pa1 []backend.Permission, err error)) *BackendMock {
	if mmPermissionCatalog.defaultExpectation != nil {
		mmPermissionCatalog.mock.t.Fatalf("Default expectation is already set for the Backend.PermissionCatalog method")
	}

	if len(mmPermissionCatalog.expectations) > 0 {
		mmPermissionCatalog.mock.t.Fatalf("Some expectations are already set for the Backend.PermissionCatalog method")
	}

	mmPermissionCatalog.mock.funcPermissionCatalog = f
	mmPermissionCatalog.mock.funcPermissionCatalogOrigin = minimock.CallerInfo(1)
	return mmPermissionCatalog.mock
}

// When sets expectation for the Backend.PermissionCatalog which will trigger the result defined by the following
// Then helper
func (mmPermissionCatalog *mBackendMockPermissionCatalog) When(ctx context.Context, token string) *BackendMockPermissionCatalogExpectation {
	if mmPermissionCatalog.mock.funcPermissionCatalog != nil {
		mmPermissionCatalog.mock.t.Fatalf("BackendMock.PermissionCatalog mock is already set by Set")
	}

	expectation := &BackendMockPermissionCatalogExpectation{
		mock:               mmPermissionCatalog.mock,
		params:             &BackendMockPermissionCatalogParams{ctx, token},
		expectationOrigins: BackendMockPermissionCatalogExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmPermissionCatalog.expectations = append(mmPermissionCatalog.expectations, expectation)
	return expectation
}

// Then sets up Backend.PermissionCatalog return parameters for the expectation previously defined by the When method
func (e *BackendMockPermissionCatalogExpectation) Then(pa1 []backend.Permission, err error) *BackendMock {
	e.results = &BackendMockPermissionCatalogResults{pa1, err}
	return e.mock
}

// Times sets number of times Backend.PermissionCatalog should be invoked
func (mmPermissionCatalog *mBackendMockPermissionCatalog) Times(n uint64) *mBackendMockPermissionCatalog {
	if n == 0 {
		mmPermissionCatalog.mock.t.Fatalf("Times of BackendMock.PermissionCatalog mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmPermissionCatalog.expectedInvocations, n)
	mmPermissionCatalog.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmPermissionCatalog
}

func (mmPermissionCatalog *mBackendMockPermissionCatalog) invocationsDone() bool {
	if len(mmPermissionCatalog.expectations) == 0 && mmPermissionCatalog.defaultExpectation == nil && mmPermissionCatalog.mock.funcPermissionCatalog == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmPermissionCatalog.mock.afterPermissionCatalogCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmPermissionCatalog.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// PermissionCatalog implements mm_auth.Backend
func (mmPermissionCatalog *BackendMock) PermissionCatalog(ctx context.Context, token string) (pa1 []backend.Permission, err error) {
	mm_atomic.AddUint64(&mmPermissionCatalog.beforePermissionCatalogCounter, 1)
	defer mm_atomic.AddUint64(&mmPermissionCatalog.afterPermissionCatalogCounter, 1)

	mmPermissionCatalog.t.Helper()

	if mmPermissionCatalog.inspectFuncPermissionCatalog != nil {
		mmPermissionCatalog.inspectFuncPermissionCatalog(ctx, token)
	}

	mm_params := BackendMockPermissionCatalogParams{ctx, token}

	// Record call args
	mmPermissionCatalog.PermissionCatalogMock.mutex.Lock()
	mmPermissionCatalog.PermissionCatalogMock.callArgs = append(mmPermissionCatalog.PermissionCatalogMock.callArgs, &mm_params)
	mmPermissionCatalog.PermissionCatalogMock.mutex.Unlock()

	for _, e := range mmPermissionCatalog.PermissionCatalogMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.pa1, e.results.err
		}
	}

	if mmPermissionCatalog.PermissionCatalogMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmPermissionCatalog.PermissionCatalogMock.defaultExpectation.Counter, 1)
		mm_want := mmPermissionCatalog.PermissionCatalogMock.defaultExpectation.params
		mm_want_ptrs := mmPermissionCatalog.PermissionCatalogMock.defaultExpectation.paramPtrs

		mm_got := BackendMockPermissionCatalogParams{ctx, token}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmPermissionCatalog.t.Errorf("BackendMock.PermissionCatalog got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmPermissionCatalog.PermissionCatalogMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.token != nil && !minimock.Equal(*mm_want_ptrs.token, mm_got.token) {
				mmPermissionCatalog.t.Errorf("BackendMock.PermissionCatalog got unexpected parameter token, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmPermissionCatalog.PermissionCatalogMock.defaultExpectation.expectationOrigins.originToken, *mm_want_ptrs.token, mm_got.token, minimock.Diff(*mm_want_ptrs.token, mm_got.token))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmPermissionCatalog.t.Errorf("BackendMock.PermissionCatalog got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmPermissionCatalog.PermissionCatalogMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmPermissionCatalog.PermissionCatalogMock.defaultExpectation.results
		if mm_results == nil {
			mmPermissionCatalog.t.Fatal("No results are set for the BackendMock.PermissionCatalog")
		}
		return (*mm_results).pa1, (*mm_results).err
	}
	if mmPermissionCatalog.funcPermissionCatalog != nil {
		return mmPermissionCatalog.funcPermissionCatalog(ctx, token)
	}
	mmPermissionCatalog.t.Fatalf("Unexpected call to BackendMock.PermissionCatalog. %v %v", ctx, token)
	return
}

// PermissionCatalogAfterCounter returns a count of finished BackendMock.PermissionCatalog invocations
func (mmPermissionCatalog *BackendMock) PermissionCatalogAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmPermissionCatalog.afterPermissionCatalogCounter)
}

// PermissionCatalogBeforeCounter returns a count of BackendMock.PermissionCatalog invocations
func (mmPermissionCatalog *BackendMock) PermissionCatalogBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmPermissionCatalog.beforePermissionCatalogCounter)
}

// Calls returns a list of arguments used in each call to BackendMock.PermissionCatalog.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmPermissionCatalog *mBackendMockPermissionCatalog) Calls() []*BackendMockPermissionCatalogParams {
	mmPermissionCatalog.mutex.RLock()

	argCopy := make([]*BackendMockPermissionCatalogParams, len(mmPermissionCatalog.callArgs))
	copy(argCopy, mmPermissionCatalog.callArgs)

	mmPermissionCatalog.mutex.RUnlock()

	return argCopy
}

// MinimockPermissionCatalogDone returns true if the count of the PermissionCatalog invocations corresponds
// the number of defined expectations
func (m *BackendMock) MinimockPermissionCatalogDone() bool {
	if m.PermissionCatalogMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.PermissionCatalogMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.PermissionCatalogMock.invocationsDone()
}

// MinimockPermissionCatalogInspect logs each unmet expectation
func (m *BackendMock) MinimockPermissionCatalogInspect() {
	for _, e := range m.PermissionCatalogMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to BackendMock.PermissionCatalog at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterPermissionCatalogCounter := mm_atomic.LoadUint64(&m.afterPermissionCatalogCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.PermissionCatalogMock.defaultExpectation != nil && afterPermissionCatalogCounter < 1 {
		if m.PermissionCatalogMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to BackendMock.PermissionCatalog at\n%s", m.PermissionCatalogMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to BackendMock.PermissionCatalog at\n%s with params: %#v", m.PermissionCatalogMock.defaultExpectation.expectationOrigins.origin, *m.PermissionCatalogMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcPermissionCatalog != nil && afterPermissionCatalogCounter < 1 {
		m.t.Errorf("Expected call to BackendMock.PermissionCatalog at\n%s", m.funcPermissionCatalogOrigin)
	}

	if !m.PermissionCatalogMock.invocationsDone() && afterPermissionCatalogCounter > 0 {
		m.t.Errorf("Expected %d calls to BackendMock.PermissionCatalog at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.PermissionCatalogMock.expectedInvocations), m.PermissionCatalogMock.expectedInvocationsOrigin, afterPermissionCatalogCounter)
	}
}

type mBackendMockRefreshToken struct {
	optional           bool
	mock               *BackendMock
	defaultExpectation *BackendMockRefreshTokenExpectation
	expectations       []*BackendMockRefreshTokenExpectation

	callArgs []*BackendMockRefreshTokenParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// BackendMockRefreshTokenExpectation specifies expectation struct of the Backend.RefreshToken
type BackendMockRefreshTokenExpectation struct {
	mock               *BackendMock
	params             *BackendMockRefreshTokenParams
	paramPtrs          *BackendMockRefreshTokenParamPtrs
	expectationOrigins BackendMockRefreshTokenExpectationOrigins
	results            *BackendMockRefreshTokenResults
	returnOrigin       string
	Counter            uint64
}

// BackendMockRefreshTokenParams contains parameters of the Backend.RefreshToken
type BackendMockRefreshTokenParams struct {
	ctx          context.Context
	refreshToken string
}

// BackendMockRefreshTokenParamPtrs contains pointers to parameters of the Backend.RefreshToken
type BackendMockRefreshTokenParamPtrs struct {
	ctx          *context.Context
	refreshToken *string
}

// BackendMockRefreshTokenResults contains results of the Backend.RefreshToken
type BackendMockRefreshTokenResults struct {
	t1  backend.TokenPair
	err error
}

// BackendMockRefreshTokenOrigins contains origins of expectations of the Backend.RefreshToken
type BackendMockRefreshTokenExpectationOrigins struct {
	origin             string
	originCtx          string
	originRefreshToken string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmRefreshToken *mBackendMockRefreshToken) Optional() *mBackendMockRefreshToken {
	mmRefreshToken.optional = true
	return mmRefreshToken
}

// Expect sets up expected params for Backend.RefreshToken
func (mmRefreshToken *mBackendMockRefreshToken) Expect(ctx context.Context, refreshToken string) *mBackendMockRefreshToken {
	if mmRefreshToken.mock.funcRefreshToken != nil {
		mmRefreshToken.mock.t.Fatalf("BackendMock.RefreshToken mock is already set by Set")
	}

	if mmRefreshToken.defaultExpectation == nil {
		mmRefreshToken.defaultExpectation = &BackendMockRefreshTokenExpectation{}
	}

	if mmRefreshToken.defaultExpectation.paramPtrs != nil {
		mmRefreshToken.mock.t.Fatalf("BackendMock.RefreshToken mock is already set by ExpectParams functions")
	}

	mmRefreshToken.defaultExpectation.params = &BackendMockRefreshTokenParams{ctx, refreshToken}
	mmRefreshToken.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmRefreshToken.expectations {
		if minimock.Equal(e.params, mmRefreshToken.defaultExpectation.params) {
			mmRefreshToken.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmRefreshToken.defaultExpectation.params)
		}
	}

	return mmRefreshToken
}

// ExpectCtxParam1 sets up expected param ctx for Backend.RefreshToken
func (mmRefreshToken *mBackendMockRefreshToken) ExpectCtxParam1(ctx context.Context) *mBackendMockRefreshToken {
	if mmRefreshToken.mock.funcRefreshToken != nil {
		mmRefreshToken.mock.t.Fatalf("BackendMock.RefreshToken mock is already set by Set")
	}

	if mmRefreshToken.defaultExpectation == nil {
		mmRefreshToken.defaultExpectation = &BackendMockRefreshTokenExpectation{}
	}

	if mmRefreshToken.defaultExpectation.params != nil {
		mmRefreshToken.mock.t.Fatalf("BackendMock.RefreshToken mock is already set by Expect")
	}

	if mmRefreshToken.defaultExpectation.paramPtrs == nil {
		mmRefreshToken.defaultExpectation.paramPtrs = &BackendMockRefreshTokenParamPtrs{}
	}
	mmRefreshToken.defaultExpectation.paramPtrs.ctx = &ctx
	mmRefreshToken.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmRefreshToken
}

// ExpectRefreshTokenParam2 sets up expected param refreshToken for Backend.RefreshToken
func (mmRefreshToken *mBackendMockRefreshToken) ExpectRefreshTokenParam2(refreshToken string) *mBackendMockRefreshToken {
	if mmRefreshToken.mock.funcRefreshToken != nil {
		mmRefreshToken.mock.t.Fatalf("BackendMock.RefreshToken mock is already set by Set")
	}

	if mmRefreshToken.defaultExpectation == nil {
		mmRefreshToken.defaultExpectation = &BackendMockRefreshTokenExpectation{}
	}

	if mmRefreshToken.defaultExpectation.params != nil {
		mmRefreshToken.mock.t.Fatalf("BackendMock.RefreshToken mock is already set by Expect")
	}

	if mmRefreshToken.defaultExpectation.paramPtrs == nil {
		mmRefreshToken.defaultExpectation.paramPtrs = &BackendMockRefreshTokenParamPtrs{}
	}
	mmRefreshToken.defaultExpectation.paramPtrs.refreshToken = &refreshToken
	mmRefreshToken.defaultExpectation.expectationOrigins.originRefreshToken = minimock.CallerInfo(1)

	return mmRefreshToken
}

// Inspect accepts an inspector function that has same arguments as the Backend.RefreshToken
func (mmRefreshToken *mBackendMockRefreshToken) Inspect(f func(ctx context.Context, refreshToken string)) *mBackendMockRefreshToken {
	if mmRefreshToken.mock.inspectFuncRefreshToken != nil {
		mmRefreshToken.mock.t.Fatalf("Inspect function is already set for BackendMock.RefreshToken")
	}

	mmRefreshToken.mock.inspectFuncRefreshToken = f

	return mmRefreshToken
}

// Return sets up results that will be returned by Backend.RefreshToken
func (mmRefreshToken *mBackendMockRefreshToken) Return(t1 backend.TokenPair, err error) *BackendMock {
	if mmRefreshToken.mock.funcRefreshToken != nil {
		mmRefreshToken.mock.t.Fatalf("BackendMock.RefreshToken mock is already set by Set")
	}

	if mmRefreshToken.defaultExpectation == nil {
		mmRefreshToken.defaultExpectation = &BackendMockRefreshTokenExpectation{mock: mmRefreshToken.mock}
	}
	mmRefreshToken.defaultExpectation.results = &BackendMockRefreshTokenResults{t1, err}
	mmRefreshToken.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmRefreshToken.mock
}

// Set uses given function f to mock the Backend.RefreshToken method
func (mmRefreshToken *mBackendMockRefreshToken) Set(f func(ctx context.Context, refreshToken string) (t1 backend.TokenPair, err error)) *BackendMock {
	if mmRefreshToken.defaultExpectation != nil {
		mmRefreshToken.mock.t.Fatalf("Default expectation is already set for the Backend.RefreshToken method")
	}

	if len(mmRefreshToken.expectations) > 0 {
		mmRefreshToken.mock.t.Fatalf("Some expectations are already set for the Backend.RefreshToken method")
	}

	mmRefreshToken.mock.funcRefreshToken = f
	mmRefreshToken.mock.funcRefreshTokenOrigin = minimock.CallerInfo(1)
	return mmRefreshToken.mock
}

// When sets expectation for the Backend.RefreshToken which will trigger the result defined by the following
// Then helper
func (mmRefreshToken *mBackendMockRefreshToken) When(ctx context.Context, refreshToken string) *BackendMockRefreshTokenExpectation {
	if mmRefreshToken.mock.funcRefreshToken != nil {
		mmRefreshToken.mock.t.Fatalf("BackendMock.RefreshToken mock is already set by Set")
	}

	expectation := &BackendMockRefreshTokenExpectation{
		mock:               mmRefreshToken.mock,
		params:             &BackendMockRefreshTokenParams{ctx, refreshToken},
		expectationOrigins: BackendMockRefreshTokenExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmRefreshToken.expectations = append(mmRefreshToken.expectations, expectation)
	return expectation
}

// Then sets up Backend.RefreshToken return parameters for the expectation previously defined by the When method
func (e *BackendMockRefreshTokenExpectation) Then(t1 backend.TokenPair, err error) *BackendMock {
	e.results = &BackendMockRefreshTokenResults{t1, err}
	return e.mock
}

// Times sets number of times Backend.RefreshToken should be invoked
func (mmRefreshToken *mBackendMockRefreshToken) Times(n uint64) *mBackendMockRefreshToken {
	if n == 0 {
		mmRefreshToken.mock.t.Fatalf("Times of BackendMock.RefreshToken mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmRefreshToken.expectedInvocations, n)
	mmRefreshToken.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmRefreshToken
}

func (mmRefreshToken *mBackendMockRefreshToken) invocationsDone() bool {
	if len(mmRefreshToken.expectations) == 0 && mmRefreshToken.defaultExpectation == nil && mmRefreshToken.mock.funcRefreshToken == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmRefreshToken.mock.afterRefreshTokenCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmRefreshToken.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// RefreshToken implements mm_auth.Backend
func (mmRefreshToken *BackendMock) RefreshToken(ctx context.Context, refreshToken string) (t1 backend.TokenPair, err error) {
	mm_atomic.AddUint64(&mmRefreshToken.beforeRefreshTokenCounter, 1)
	defer mm_atomic.AddUint64(&mmRefreshToken.afterRefreshTokenCounter, 1)

	mmRefreshToken.t.Helper()

	if mmRefreshToken.inspectFuncRefreshToken != nil {
		mmRefreshToken.inspectFuncRefreshToken(ctx, refreshToken)
	}

	mm_params := BackendMockRefreshTokenParams{ctx, refreshToken}

	// Record call args
	mmRefreshToken.RefreshTokenMock.mutex.Lock()
	mmRefreshToken.RefreshTokenMock.callArgs = append(mmRefreshToken.RefreshTokenMock.callArgs, &mm_params)
	mmRefreshToken.RefreshTokenMock.mutex.Unlock()

	for _, e := range mmRefreshToken.RefreshTokenMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.t1, e.results.err
		}
	}

	if mmRefreshToken.RefreshTokenMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmRefreshToken.RefreshTokenMock.defaultExpectation.Counter, 1)
		mm_want := mmRefreshToken.RefreshTokenMock.defaultExpectation.params
		mm_want_ptrs := mmRefreshToken.RefreshTokenMock.defaultExpectation.paramPtrs

		mm_got := BackendMockRefreshTokenParams{ctx, refreshToken}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmRefreshToken.t.Errorf("BackendMock.RefreshToken got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmRefreshToken.RefreshTokenMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.refreshToken != nil && !minimock.Equal(*mm_want_ptrs.refreshToken, mm_got.refreshToken) {
				mmRefreshToken.t.Errorf("BackendMock.RefreshToken got unexpected parameter refreshToken, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmRefreshToken.RefreshTokenMock.defaultExpectation.expectationOrigins.originRefreshToken, *mm_want_ptrs.refreshToken, mm_got.refreshToken, minimock.Diff(*mm_want_ptrs.refreshToken, mm_got.refreshToken))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmRefreshToken.t.Errorf("BackendMock.RefreshToken got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmRefreshToken.RefreshTokenMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmRefreshToken.RefreshTokenMock.defaultExpectation.results
		if mm_results == nil {
			mmRefreshToken.t.Fatal("No results are set for the BackendMock.RefreshToken")
		}
		return (*mm_results).t1, (*mm_results).err
	}
	if mmRefreshToken.funcRefreshToken != nil {
		return mmRefreshToken.funcRefreshToken(ctx, refreshToken)
	}
	mmRefreshToken.t.Fatalf("Unexpected call to BackendMock.RefreshToken. %v %v", ctx, refreshToken)
	return
}

// RefreshTokenAfterCounter returns a count of finished BackendMock.RefreshToken invocations
func (mmRefreshToken *BackendMock) RefreshTokenAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmRefreshToken.afterRefreshTokenCounter)
}

// RefreshTokenBeforeCounter returns a count of BackendMock.RefreshToken invocations
func (mmRefreshToken *BackendMock) RefreshTokenBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmRefreshToken.beforeRefreshTokenCounter)
}

// Calls returns a list of arguments used in each call to BackendMock.RefreshToken.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmRefreshToken *mBackendMockRefreshToken) Calls() []*BackendMockRefreshTokenParams {
	mmRefreshToken.mutex.RLock()

	argCopy := make([]*BackendMockRefreshTokenParams, len(mmRefreshToken.callArgs))
	copy(argCopy, mmRefreshToken.callArgs)

	mmRefreshToken.mutex.RUnlock()

	return argCopy
}

// MinimockRefreshTokenDone returns true if the count of the RefreshToken invocations corresponds
// the number of defined expectations
func (m *BackendMock) MinimockRefreshTokenDone() bool {
	if m.RefreshTokenMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.RefreshTokenMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.RefreshTokenMock.invocationsDone()
}

// MinimockRefreshTokenInspect logs each unmet expectation
func (m *BackendMock) MinimockRefreshTokenInspect() {
	for _, e := range m.RefreshTokenMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to BackendMock.RefreshToken at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterRefreshTokenCounter := mm_atomic.LoadUint64(&m.afterRefreshTokenCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.RefreshTokenMock.defaultExpectation != nil && afterRefreshTokenCounter < 1 {
		if m.RefreshTokenMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to BackendMock.RefreshToken at\n%s", m.RefreshTokenMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to BackendMock.RefreshToken at\n%s with params: %#v", m.RefreshTokenMock.defaultExpectation.expectationOrigins.origin, *m.RefreshTokenMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcRefreshToken != nil && afterRefreshTokenCounter < 1 {
		m.t.Errorf("Expected call to BackendMock.RefreshToken at\n%s", m.funcRefreshTokenOrigin)
	}

	if !m.RefreshTokenMock.invocationsDone() && afterRefreshTokenCounter > 0 {
		m.t.Errorf("Expected %d calls to BackendMock.RefreshToken at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.RefreshTokenMock.expectedInvocations), m.RefreshTokenMock.expectedInvocationsOrigin, afterRefreshTokenCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *BackendMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockAssignedPermissionsInspect()

			m.MinimockCompanyInspect()

			m.MinimockEmployeeInfoInspect()

			m.MinimockLoginInspect()

			m.MinimockPermissionCatalogInspect()

			m.MinimockRefreshTokenInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *BackendMock) MinimockWait(timeout mm_time.Duration) {
	timeoutCh := mm_time.After(timeout)
	for {
		if m.minimockDone() {
			return
		}
		select {
		case <-timeoutCh:
			m.MinimockFinish()
			return
		case <-mm_time.After(10 * mm_time.Millisecond):
		}
	}
}

func (m *BackendMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockAssignedPermissionsDone() &&
		m.MinimockCompanyDone() &&
		m.MinimockEmployeeInfoDone() &&
		m.MinimockLoginDone() &&
		m.MinimockPermissionCatalogDone() &&
		m.MinimockRefreshTokenDone()
}
