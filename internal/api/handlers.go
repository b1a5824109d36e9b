package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lotionhq/huddle/internal/db"
	"github.com/lotionhq/huddle/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db             *gorm.DB
	secretKey      []byte
	location       *time.Location
	cookieSecure   bool
	teamPassphrase string

	repositories      *db.Repositories
	authService       *services.AuthService
	boardService      *services.BoardService
	assignmentService *services.AssignmentService
	catalogService    *services.CatalogService
	rosterService     *services.RosterService
}

type credentialsInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type passphraseInput struct {
	Passphrase string `json:"passphrase" form:"passphrase"`
}

type assigneeInput struct {
	// UserID stays a string so the empty-string "unassign" sentinel survives
	// the wire format.
	UserID string `json:"user_id" form:"user_id"`
}

type togglePayload struct {
	Done        bool  `json:"done"`
	SupporterID *uint `json:"supporter_id"`
}

type bucketPayload struct {
	Title string `json:"title" form:"title"`
}

type taskPayload struct {
	Content string `json:"content" form:"content"`
}

type newUserPayload struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

type renamePayload struct {
	Name string `json:"name" form:"name"`
}

const authTokenTTL = 7 * 24 * time.Hour

type authClaims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool, teamPassphrase string) *Handler {
	if location == nil {
		location = time.Local
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		db:             database,
		secretKey:      []byte(secret),
		location:       location,
		cookieSecure:   cookieSecure,
		teamPassphrase: teamPassphrase,

		repositories: repositories,
		authService:  services.NewAuthService(repositories.Users),
		boardService: services.NewBoardService(
			repositories.DailyLogs,
			repositories.Buckets,
			repositories.Assignments,
			repositories.Tasks,
			repositories.Users,
		),
		assignmentService: services.NewAssignmentService(
			repositories.DailyLogs,
			repositories.Assignments,
			repositories.Progress,
			repositories.Users,
			repositories.Tasks,
		),
		catalogService: services.NewCatalogService(repositories.Buckets, repositories.Tasks),
		rosterService:  services.NewRosterService(repositories.Users),
	}
}
