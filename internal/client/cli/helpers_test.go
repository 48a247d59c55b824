package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/taskflowhq/taskflow-cli/internal/client/api"
	"github.com/taskflowhq/taskflow-cli/internal/client/config"
	"github.com/taskflowhq/taskflow-cli/internal/client/models"
	"github.com/taskflowhq/taskflow-cli/internal/client/session"
	"github.com/taskflowhq/taskflow-cli/internal/client/store"
	"github.com/taskflowhq/taskflow-cli/internal/logging"
)

var errNotStubbed = errors.New("not stubbed")

// memRepo is an in-memory metadata repository so cli tests need no database.
type memRepo struct {
	mu sync.Mutex
	m  map[string][]byte
}

func newMemRepo() *memRepo { return &memRepo{m: make(map[string][]byte)} }

func (r *memRepo) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.m[key], nil
}

func (r *memRepo) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[key] = value
	return nil
}

func (r *memRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, key)
	return nil
}

func (r *memRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = make(map[string][]byte)
	return nil
}

func (r *memRepo) List(_ context.Context) (map[string][]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string][]byte, len(r.m))
	for k, v := range r.m {
		out[k] = v
	}
	return out, nil
}

type fakeAuth struct {
	loginFn  func(ctx context.Context, email, password string) (*models.Identity, error)
	logoutFn func(ctx context.Context) error
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	if f.loginFn == nil {
		return nil, errNotStubbed
	}
	return f.loginFn(ctx, email, password)
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	if f.logoutFn == nil {
		return nil
	}
	return f.logoutFn(ctx)
}

type fakeAdmin struct {
	registerFn func(ctx context.Context, name, email, password string, role models.Role) (*models.Identity, error)
}

func (f *fakeAdmin) Register(ctx context.Context, name, email, password string, role models.Role) (*models.Identity, error) {
	if f.registerFn == nil {
		return nil, errNotStubbed
	}
	return f.registerFn(ctx, name, email, password, role)
}

type fakeManager struct {
	createProjectFn func(ctx context.Context, req api.ProjectRequest) (*models.Project, string, error)
	listProjectsFn  func(ctx context.Context) ([]models.Project, error)
	getProjectFn    func(ctx context.Context, projectID int64) (*models.Project, error)
	deleteProjectFn func(ctx context.Context, projectID int64) (string, error)
	addMembersFn    func(ctx context.Context, projectID int64, memberIDs []int64) (string, error)
	listMembersFn   func(ctx context.Context, projectID int64) ([]models.Member, error)
	createTaskFn    func(ctx context.Context, projectID int64, req api.TaskRequest) (*models.Task, string, error)
	deleteTaskFn    func(ctx context.Context, projectID, taskID int64) (string, error)
	taskStatsFn     func(ctx context.Context) (*models.TaskStats, error)
	totalMembersFn  func(ctx context.Context) (int64, error)
}

func (f *fakeManager) CreateProject(ctx context.Context, req api.ProjectRequest) (*models.Project, string, error) {
	if f.createProjectFn == nil {
		return nil, "", errNotStubbed
	}
	return f.createProjectFn(ctx, req)
}

func (f *fakeManager) ListProjects(ctx context.Context) ([]models.Project, error) {
	if f.listProjectsFn == nil {
		return nil, errNotStubbed
	}
	return f.listProjectsFn(ctx)
}

func (f *fakeManager) GetProject(ctx context.Context, projectID int64) (*models.Project, error) {
	if f.getProjectFn == nil {
		return nil, errNotStubbed
	}
	return f.getProjectFn(ctx, projectID)
}

func (f *fakeManager) DeleteProject(ctx context.Context, projectID int64) (string, error) {
	if f.deleteProjectFn == nil {
		return "", errNotStubbed
	}
	return f.deleteProjectFn(ctx, projectID)
}

func (f *fakeManager) AddMembers(ctx context.Context, projectID int64, memberIDs []int64) (string, error) {
	if f.addMembersFn == nil {
		return "", errNotStubbed
	}
	return f.addMembersFn(ctx, projectID, memberIDs)
}

func (f *fakeManager) ListMembers(ctx context.Context, projectID int64) ([]models.Member, error) {
	if f.listMembersFn == nil {
		return nil, errNotStubbed
	}
	return f.listMembersFn(ctx, projectID)
}

func (f *fakeManager) CreateTask(ctx context.Context, projectID int64, req api.TaskRequest) (*models.Task, string, error) {
	if f.createTaskFn == nil {
		return nil, "", errNotStubbed
	}
	return f.createTaskFn(ctx, projectID, req)
}

func (f *fakeManager) DeleteTask(ctx context.Context, projectID, taskID int64) (string, error) {
	if f.deleteTaskFn == nil {
		return "", errNotStubbed
	}
	return f.deleteTaskFn(ctx, projectID, taskID)
}

func (f *fakeManager) TaskStats(ctx context.Context) (*models.TaskStats, error) {
	if f.taskStatsFn == nil {
		return nil, errNotStubbed
	}
	return f.taskStatsFn(ctx)
}

func (f *fakeManager) TotalMembers(ctx context.Context) (int64, error) {
	if f.totalMembersFn == nil {
		return 0, errNotStubbed
	}
	return f.totalMembersFn(ctx)
}

type fakeMember struct {
	myTasksFn        func(ctx context.Context) ([]models.Task, error)
	updateStatusFn   func(ctx context.Context, taskID int64, status models.TaskStatus) (*models.Task, string, error)
	updatePriorityFn func(ctx context.Context, taskID int64, priority models.TaskPriority) (*models.Task, string, error)
}

func (f *fakeMember) MyTasks(ctx context.Context) ([]models.Task, error) {
	if f.myTasksFn == nil {
		return nil, errNotStubbed
	}
	return f.myTasksFn(ctx)
}

func (f *fakeMember) UpdateTaskStatus(ctx context.Context, taskID int64, status models.TaskStatus) (*models.Task, string, error) {
	if f.updateStatusFn == nil {
		return nil, "", errNotStubbed
	}
	return f.updateStatusFn(ctx, taskID, status)
}

func (f *fakeMember) UpdateTaskPriority(ctx context.Context, taskID int64, priority models.TaskPriority) (*models.Task, string, error) {
	if f.updatePriorityFn == nil {
		return nil, "", errNotStubbed
	}
	return f.updatePriorityFn(ctx, taskID, priority)
}

type fakeUser struct {
	currentUserFn    func(ctx context.Context) (*models.Identity, error)
	searchFn         func(ctx context.Context, projectID int64, query string) ([]models.Member, error)
	taskCandidatesFn func(ctx context.Context, projectID int64) ([]models.Member, error)
}

func (f *fakeUser) CurrentUser(ctx context.Context) (*models.Identity, error) {
	if f.currentUserFn == nil {
		return nil, errNotStubbed
	}
	return f.currentUserFn(ctx)
}

func (f *fakeUser) SearchAvailableMembers(ctx context.Context, projectID int64, query string) ([]models.Member, error) {
	if f.searchFn == nil {
		return nil, errNotStubbed
	}
	return f.searchFn(ctx, projectID, query)
}

func (f *fakeUser) AvailableMembersForTask(ctx context.Context, projectID int64) ([]models.Member, error) {
	if f.taskCandidatesFn == nil {
		return nil, errNotStubbed
	}
	return f.taskCandidatesFn(ctx, projectID)
}

// newTestApp builds an App over fakes, reading commands from input and
// writing everything to the returned buffer.
func newTestApp(input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SearchDebounce = 5 * time.Millisecond
	cfg.RequestTimeout = time.Second

	log := logging.NewTextLogger(io.Discard, "error")
	return &App{
		config:    cfg,
		log:       log,
		session:   session.NewStore(newMemRepo(), log),
		resources: store.New(),
		auth:      &fakeAuth{},
		admin:     &fakeAdmin{},
		manager:   &fakeManager{},
		member:    &fakeMember{},
		user:      &fakeUser{},
		reader:    bufio.NewReader(strings.NewReader(input)),
		out:       out,
	}, out
}

func loginAs(t *testing.T, a *App, role models.Role) {
	t.Helper()
	a.session.Set(context.Background(), &models.Identity{
		ID: 1, Name: "Test User", Email: "test@example.org", Token: "tok", Role: role,
	})
}

func stubPassword(t *testing.T, password string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() { getPassword = orig })
}
