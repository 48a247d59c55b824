package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/taskflowhq/taskflow-cli/internal/client/api"
	"github.com/taskflowhq/taskflow-cli/internal/client/config"
	"github.com/taskflowhq/taskflow-cli/internal/client/localdb"
	"github.com/taskflowhq/taskflow-cli/internal/client/models"
	"github.com/taskflowhq/taskflow-cli/internal/client/repositories/metadata"
	"github.com/taskflowhq/taskflow-cli/internal/client/session"
	"github.com/taskflowhq/taskflow-cli/internal/client/store"
	"github.com/taskflowhq/taskflow-cli/internal/logging"
)

// test seams, swapped out in unit tests
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getConfirm    = GetConfirm
)

// The dashboards talk to the API through these interfaces so tests can
// substitute fakes for the gateway clients.

type authAPI interface {
	Login(ctx context.Context, email, password string) (*models.Identity, error)
	Logout(ctx context.Context) error
}

type adminAPI interface {
	Register(ctx context.Context, name, email, password string, role models.Role) (*models.Identity, error)
}

type managerAPI interface {
	CreateProject(ctx context.Context, req api.ProjectRequest) (*models.Project, string, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, projectID int64) (*models.Project, error)
	DeleteProject(ctx context.Context, projectID int64) (string, error)
	AddMembers(ctx context.Context, projectID int64, memberIDs []int64) (string, error)
	ListMembers(ctx context.Context, projectID int64) ([]models.Member, error)
	CreateTask(ctx context.Context, projectID int64, req api.TaskRequest) (*models.Task, string, error)
	DeleteTask(ctx context.Context, projectID, taskID int64) (string, error)
	TaskStats(ctx context.Context) (*models.TaskStats, error)
	TotalMembers(ctx context.Context) (int64, error)
}

type memberAPI interface {
	MyTasks(ctx context.Context) ([]models.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID int64, status models.TaskStatus) (*models.Task, string, error)
	UpdateTaskPriority(ctx context.Context, taskID int64, priority models.TaskPriority) (*models.Task, string, error)
}

type userAPI interface {
	CurrentUser(ctx context.Context) (*models.Identity, error)
	SearchAvailableMembers(ctx context.Context, projectID int64, query string) ([]models.Member, error)
	AvailableMembersForTask(ctx context.Context, projectID int64) ([]models.Member, error)
}

// App wires configuration, logging, the local database, the session and
// resource stores and the gateway clients into one interactive client.
type App struct {
	config    *config.Config
	log       logging.Logger
	db        *sql.DB
	session   *session.Store
	resources *store.Store

	auth    authAPI
	admin   adminAPI
	manager managerAPI
	member  memberAPI
	user    userAPI

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := localdb.Open(ctx, cfg.LocalDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	sess := session.NewStore(metadata.NewSQLiteRepository(db), log)
	core := api.NewClient(cfg.ServerEndpointAddr, cfg.RequestTimeout, func() string {
		if id := sess.Identity(); id != nil {
			return id.Token
		}
		return ""
	}, log)

	return &App{
		config:    cfg,
		log:       log.With("component", "cli"),
		db:        db,
		session:   sess,
		resources: store.New(),
		auth:      api.NewAuthClient(core),
		admin:     api.NewAdminClient(core),
		manager:   api.NewManagerClient(core),
		member:    api.NewMemberClient(core),
		user:      api.NewUserClient(core),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
