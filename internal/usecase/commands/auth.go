package commands

import (
	"context"

	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/pkg/jwt"
	"hotel-frontdesk/internal/pkg/password"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoginResult struct {
	StaffID     uuid.UUID
	AccessToken string
	Staff       queries.StaffView
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	staff, err := a.uow.CommandReads().StaffByEmail(ctx, email)
	if err != nil || staff == nil {
		// Same error as password mismatch to prevent account enumeration.
		return nil, errs.ErrInvalidCredentials
	}
	if !staff.IsActive {
		return nil, errs.ErrInvalidCredentials
	}
	if err := password.ComparePassword(staff.PasswordHash, plainPassword); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(staff.ID, staff.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &LoginResult{
		StaffID:     staff.ID,
		AccessToken: token,
		Staff: queries.StaffView{
			ID:       staff.ID,
			Email:    staff.Email,
			Name:     staff.Name,
			Role:     staff.Role,
			IsActive: staff.IsActive,
		},
	}, nil
}
