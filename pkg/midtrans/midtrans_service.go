package midtrans

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/RaihanAdityaP/savora-web-sub000/domain"
	"github.com/RaihanAdityaP/savora-web-sub000/entities"
	"github.com/RaihanAdityaP/savora-web-sub000/internal/utils"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/user"
	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	MidtransService interface {
		Subscribe(ctx context.Context, userID string) (domain.SubscribeResponse, error)
		HandleNotification(ctx context.Context, req domain.MidtransNotificationRequest) error
	}

	midtransService struct {
		midtransRepository MidtransRepository
		userRepository     user.UserRepository
		snapClient         snap.Client
		coreClient         coreapi.Client
	}
)

func NewMidtransService(midtransRepository MidtransRepository, userRepository user.UserRepository) MidtransService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var snapClient snap.Client
	snapClient.New(utils.GetConfig("SERVER_KEY"), env)

	var coreClient coreapi.Client
	coreClient.New(utils.GetConfig("SERVER_KEY"), env)

	return &midtransService{
		midtransRepository: midtransRepository,
		userRepository:     userRepository,
		snapClient:         snapClient,
		coreClient:         coreClient,
	}
}

func (s *midtransService) Subscribe(ctx context.Context, userID string) (domain.SubscribeResponse, error) {
	account, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubscribeResponse{}, domain.ErrUserNotFound
		}
		return domain.SubscribeResponse{}, err
	}
	if account.Role == domain.RolePremium {
		return domain.SubscribeResponse{}, domain.ErrAlreadyPremium
	}

	orderID := fmt.Sprintf("savora-premium-%s", uuid.New().String())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: domain.PremiumPriceIDR,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: account.DisplayName,
			Email: account.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    "premium-subscription",
				Name:  "Savora Premium",
				Price: domain.PremiumPriceIDR,
				Qty:   1,
			},
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		log.Printf("snap transaction for order %s failed: %v", orderID, snapErr)
		return domain.SubscribeResponse{}, snapErr
	}

	transaction := &entities.PaymentTransaction{
		ID:      uuid.New(),
		OrderID: orderID,
		UserID:  account.ID,
		Amount:  domain.PremiumPriceIDR,
		Status:  "pending",
	}
	if err := s.midtransRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.SubscribeResponse{}, err
	}

	return domain.SubscribeResponse{
		OrderID:     orderID,
		Token:       snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

// HandleNotification processes a payment webhook. The status is re-checked
// against the gateway; the notification body alone is never trusted.
func (s *midtransService) HandleNotification(ctx context.Context, req domain.MidtransNotificationRequest) error {
	transaction, err := s.midtransRepository.GetTransactionByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	status, checkErr := s.coreClient.CheckTransaction(req.OrderID)
	if checkErr != nil {
		log.Printf("transaction check for order %s failed: %v", req.OrderID, checkErr)
		return checkErr
	}

	switch status.TransactionStatus {
	case "settlement":
		transaction.Status = "settlement"
	case "capture":
		if status.FraudStatus == "accept" {
			transaction.Status = "settlement"
		}
	case "expire":
		transaction.Status = "expire"
	case "cancel", "deny":
		transaction.Status = "cancel"
	}

	if err := s.midtransRepository.UpdateTransaction(ctx, transaction); err != nil {
		return err
	}

	if transaction.Status == "settlement" {
		account, err := s.userRepository.GetUserByID(ctx, transaction.UserID.String())
		if err != nil {
			return err
		}
		if account.Role != domain.RoleAdmin {
			account.Role = domain.RolePremium
			if err := s.userRepository.UpdateUser(ctx, account); err != nil {
				return err
			}
		}
	}

	return nil
}
