package user

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	SeedAdminEmail    = "admin@company.com"
	seedAdminPassword = "admin123"
)

// EnsureAdminSeed inserts the single administrator account into an empty
// store. It is the only seed row; sample data from earlier prototypes is
// intentionally not reproduced. Failures are logged and swallowed so a
// seed problem never prevents startup.
func EnsureAdminSeed(ctx context.Context, repo Repository) {
	n, err := repo.CountAll(ctx)
	if err != nil {
		zap.L().Named("audit").Warn("seed skipped: count failed", zap.Error(err))
		return
	}
	if n > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Named("audit").Warn("seed skipped: hash failed", zap.Error(err))
		return
	}

	admin := &User{
		Email:        SeedAdminEmail,
		PasswordHash: string(hashed),
		Name:         "Admin User",
		Role:         RoleAdmin,
		Designation:  "System Administrator",
		Department:   "Management",
		JoiningDate:  "2024-01-01",
	}

	if err := repo.Create(ctx, admin); err != nil {
		zap.L().Named("audit").Warn("seed failed: admin insert", zap.Error(err))
		return
	}

	zap.L().Named("audit").Info("seeded administrator account",
		zap.String("email", SeedAdminEmail),
		zap.Uint("id", admin.ID),
	)
}
