package repositories

import (
	"github.com/yigit/placement/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	DriveRepository       *DriveRepository
	ApplicationRepository *ApplicationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(pool db.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(pool),
		DriveRepository:       NewDriveRepository(pool),
		ApplicationRepository: NewApplicationRepository(pool),
	}
}
