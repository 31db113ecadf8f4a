package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/RaihanAdityaP/savora-web-sub000/domain"
	"github.com/RaihanAdityaP/savora-web-sub000/entities"
	"github.com/RaihanAdityaP/savora-web-sub000/internal/cache"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/notification"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/rating"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/recipe"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ban markers outlive the longest-lived access token, so every token issued
// before the ban is rejected for its whole lifetime.
const banMarkerTTL = 25 * time.Hour

type (
	AdminService interface {
		GetModerationQueue(ctx context.Context, page int) ([]domain.RecipeSummary, int64, error)
		ApproveRecipe(ctx context.Context, recipeID, adminID string, req domain.ModerateRecipeRequest) error
		RejectRecipe(ctx context.Context, recipeID, adminID string, req domain.ModerateRecipeRequest) error
		BanUser(ctx context.Context, userID, adminID string, req domain.BanUserRequest) error
		UnbanUser(ctx context.Context, userID, adminID string) error
		GetUsers(ctx context.Context, page int) ([]domain.AdminUserResponse, int64, error)
		GetActivityLogs(ctx context.Context, page int) ([]domain.ActivityLogResponse, int64, error)
	}

	adminService struct {
		adminRepository        AdminRepository
		userRepository         user.UserRepository
		recipeRepository       recipe.RecipeRepository
		ratingRepository       rating.RatingRepository
		notificationRepository notification.NotificationRepository
		banStore               cache.BanStore
	}
)

func NewAdminService(
	adminRepository AdminRepository,
	userRepository user.UserRepository,
	recipeRepository recipe.RecipeRepository,
	ratingRepository rating.RatingRepository,
	notificationRepository notification.NotificationRepository,
	banStore cache.BanStore,
) AdminService {
	return &adminService{
		adminRepository:        adminRepository,
		userRepository:         userRepository,
		recipeRepository:       recipeRepository,
		ratingRepository:       ratingRepository,
		notificationRepository: notificationRepository,
		banStore:               banStore,
	}
}

func (s *adminService) GetModerationQueue(ctx context.Context, page int) ([]domain.RecipeSummary, int64, error) {
	if page < 1 {
		page = 1
	}

	recipes, total, err := s.recipeRepository.GetRecipesByStatus(ctx, domain.RecipeStatusPending, page, domain.RecipePageSize)
	if err != nil {
		return nil, 0, err
	}
	return recipe.BuildSummaries(ctx, s.ratingRepository, recipes), total, nil
}

func (s *adminService) ApproveRecipe(ctx context.Context, recipeID, adminID string, req domain.ModerateRecipeRequest) error {
	return s.moderateRecipe(ctx, recipeID, adminID, domain.RecipeStatusApproved, "approve_recipe", req.Note)
}

func (s *adminService) RejectRecipe(ctx context.Context, recipeID, adminID string, req domain.ModerateRecipeRequest) error {
	return s.moderateRecipe(ctx, recipeID, adminID, domain.RecipeStatusRejected, "reject_recipe", req.Note)
}

// moderateRecipe applies the status verdict. The verdict write is the
// operation; the audit entry and the author notification are best-effort and
// never roll it back.
func (s *adminService) moderateRecipe(ctx context.Context, recipeID, adminID, status, action, note string) error {
	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return domain.ErrParseUUID
	}

	rec, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if rec.Status != domain.RecipeStatusPending {
		return domain.ErrRecipeNotPending
	}

	now := time.Now()
	rec.Status = status
	rec.ModeratedBy = &adminUUID
	rec.ModeratedAt = &now
	if err := s.recipeRepository.UpdateRecipe(ctx, rec); err != nil {
		return err
	}

	s.recordActivity(ctx, adminUUID, action, rec.ID, "recipe", note)

	var message string
	if status == domain.RecipeStatusApproved {
		message = fmt.Sprintf("Your recipe %q was approved", rec.Title)
	} else {
		message = fmt.Sprintf("Your recipe %q was rejected", rec.Title)
		if note != "" {
			message = fmt.Sprintf("%s: %s", message, note)
		}
	}
	notif := &entities.Notification{
		UserID:     rec.UserID,
		ActorID:    adminUUID,
		Type:       domain.NotificationRecipeModerated,
		EntityID:   rec.ID,
		EntityType: "recipe",
		Message:    message,
	}
	if err := s.notificationRepository.CreateNotification(ctx, notif); err != nil {
		log.Printf("moderation notification failed: %v", err)
	}

	return nil
}

func (s *adminService) BanUser(ctx context.Context, userID, adminID string, req domain.BanUserRequest) error {
	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return domain.ErrParseUUID
	}

	target, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if target.Role == domain.RoleAdmin {
		return domain.ErrCannotBanAdmin
	}
	if target.IsBanned {
		return domain.ErrUserAlreadyBanned
	}

	now := time.Now()
	target.IsBanned = true
	target.BanReason = req.Reason
	target.BannedAt = &now
	target.BannedBy = &adminUUID
	if err := s.userRepository.UpdateUser(ctx, target); err != nil {
		return err
	}

	// The marker makes already issued tokens fail on their next request.
	if err := s.banStore.MarkBanned(ctx, userID, req.Reason, banMarkerTTL); err != nil {
		log.Printf("ban marker for user %s failed: %v", userID, err)
	}

	s.recordActivity(ctx, adminUUID, "ban_user", target.ID, "user", req.Reason)
	return nil
}

func (s *adminService) UnbanUser(ctx context.Context, userID, adminID string) error {
	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return domain.ErrParseUUID
	}

	target, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if !target.IsBanned {
		return domain.ErrUserNotBanned
	}

	target.IsBanned = false
	target.BanReason = ""
	target.BannedAt = nil
	target.BannedBy = nil
	if err := s.userRepository.UpdateUser(ctx, target); err != nil {
		return err
	}

	if err := s.banStore.ClearBan(ctx, userID); err != nil {
		log.Printf("ban marker cleanup for user %s failed: %v", userID, err)
	}

	s.recordActivity(ctx, adminUUID, "unban_user", target.ID, "user", "")
	return nil
}

func (s *adminService) GetUsers(ctx context.Context, page int) ([]domain.AdminUserResponse, int64, error) {
	if page < 1 {
		page = 1
	}

	users, total, err := s.userRepository.GetUsers(ctx, page, domain.RecipePageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.AdminUserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, domain.AdminUserResponse{
			ID:          u.ID.String(),
			Username:    u.Username,
			Email:       u.Email,
			Role:        u.Role,
			IsBanned:    u.IsBanned,
			BanReason:   u.BanReason,
			BannedAt:    u.BannedAt,
			RecipeCount: u.RecipeCount,
			CreatedAt:   u.CreatedAt,
		})
	}
	return responses, total, nil
}

func (s *adminService) GetActivityLogs(ctx context.Context, page int) ([]domain.ActivityLogResponse, int64, error) {
	if page < 1 {
		page = 1
	}

	logs, total, err := s.adminRepository.GetActivityLogs(ctx, page, domain.RecipePageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.ActivityLogResponse, 0, len(logs))
	for _, entry := range logs {
		responses = append(responses, domain.ActivityLogResponse{
			ID:         entry.ID.String(),
			AdminID:    entry.AdminID.String(),
			Action:     entry.Action,
			EntityID:   entry.EntityID.String(),
			EntityType: entry.EntityType,
			Details:    entry.Details,
			CreatedAt:  entry.CreatedAt,
		})
	}
	return responses, total, nil
}

func (s *adminService) recordActivity(ctx context.Context, adminID uuid.UUID, action string, entityID uuid.UUID, entityType, details string) {
	entry := &entities.ActivityLog{
		AdminID:    adminID,
		Action:     action,
		EntityID:   entityID,
		EntityType: entityType,
		Details:    details,
	}
	if err := s.adminRepository.CreateActivityLog(ctx, entry); err != nil {
		log.Printf("activity log for %s failed: %v", action, err)
	}
}
