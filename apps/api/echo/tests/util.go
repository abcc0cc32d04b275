package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/shule/apps/api/echo"
	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/core/school"
	emailsvc "github.com/trezcool/shule/services/email"
	logsvc "github.com/trezcool/shule/services/logger"
	reportsvc "github.com/trezcool/shule/services/report"
	"github.com/trezcool/shule/storage/inmem"
	testutil "github.com/trezcool/shule/tests"
)

var (
	conf       *core.Config
	acctRepo   auth.Repository
	schoolRepo school.Repository

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
	errForbidden    = httpErr{Error: "permission denied"}
)

// seeded identities used across the suite
var (
	adminIdent   = auth.Identity{ID: "1", Email: "admin@school.com", Name: "Admin User", Role: auth.RoleAdmin}
	teacherIdent = auth.Identity{ID: "4", Email: "sarah.johnson@school.edu", Name: "Dr. Sarah Johnson", Role: auth.RoleTeacher}
	studentIdent = auth.Identity{ID: "9", Email: "emma.thompson@student.edu", Name: "Emma Thompson", Role: auth.RoleStudent}
	// demo student account with no matching Student record
	ghostIdent = auth.Identity{ID: "3", Email: "student@school.com", Name: "Alex Smith", Role: auth.RoleStudent}
)

func setup(t *testing.T) Server {
	conf = core.NewConfig()
	conf.Debug = false
	conf.TestMode = true

	// set up DB & repos
	db := testutil.PrepareDB(t)
	acctRepo = inmem.NewAccountRepository(db)
	schoolRepo = inmem.NewSchoolRepository(db)

	// set up services
	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	authSvc := auth.NewService(acctRepo)
	schoolSvc := school.NewService(schoolRepo, mailSvc)
	reportSvc := reportsvc.NewService(schoolRepo)

	// set up server
	return NewServer(
		ServerDeps{
			Conf:           conf,
			Logger:         logsvc.NewStdLogger("TEST : "),
			AuthSvc:        authSvc,
			SchoolSvc:      schoolSvc,
			Repo:           schoolRepo,
			ReportSvc:      reportSvc,
			DisableReqLogs: true,
		},
	)
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, ident auth.Identity) string {
	claims := GetIdentityClaims(conf, ident)
	token, err := GenerateToken(conf, claims)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	if objs == nil {
		objs = []interface{}{} // handlers render empty lists as [], not null
	}
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
