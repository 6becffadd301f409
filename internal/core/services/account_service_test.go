package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/ipt_portal_app/internal/apperrors"
	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
	"github.com/SscSPs/ipt_portal_app/internal/core/services"
	"github.com/SscSPs/ipt_portal_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         *services.AccountService
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
}

func strPtr(s string) *string            { return &s }
func rolePtr(r domain.Role) *domain.Role { return &r }

// --- CreateAccount ---

func (suite *AccountServiceTestSuite) TestCreateAccount_DefaultsRoleToUser() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "Grace@Example.com",
		Password:  "secret1",
		Verified:  true,
	}

	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "grace@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Email == "grace@example.com" && a.Role == domain.RoleUser && a.Verified
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.NoError(err)
	suite.Equal(domain.RoleUser, account.Role)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidRole() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Password:  "secret1",
		Role:      domain.Role("superuser"),
	}

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Password:  "secret1",
	}

	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "grace@example.com").
		Return(&domain.Account{Email: "grace@example.com"}, nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- UpdateAccount ---

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialFields() {
	ctx := context.Background()
	stored := &domain.Account{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Password:  "secret1",
		Verified:  true,
		Role:      domain.RoleUser,
	}

	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "grace@example.com").Return(stored, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, "grace@example.com", mock.MatchedBy(func(a domain.Account) bool {
		return a.FirstName == "Gracie" && a.LastName == "Hopper" && a.Role == domain.RoleAdmin && a.Password == "secret1"
	})).Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, "grace@example.com", dto.UpdateAccountRequest{
		FirstName: strPtr("Gracie"),
		Role:      rolePtr(domain.RoleAdmin),
	})

	suite.NoError(err)
	suite.Equal("Gracie", account.FirstName)
	suite.Equal(domain.RoleAdmin, account.Role)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_ChangedEmailMustBeFree() {
	ctx := context.Background()
	stored := &domain.Account{Email: "grace@example.com", Role: domain.RoleUser}

	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "grace@example.com").Return(stored, nil).Once()
	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "taken@example.com").
		Return(&domain.Account{Email: "taken@example.com"}, nil).Once()

	account, err := suite.service.UpdateAccount(ctx, "grace@example.com", dto.UpdateAccountRequest{
		Email: strPtr("Taken@Example.com"),
	})

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_SameEmailSkipsUniquenessCheck() {
	ctx := context.Background()
	stored := &domain.Account{Email: "grace@example.com", Role: domain.RoleUser}

	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "grace@example.com").Return(stored, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, "grace@example.com", mock.Anything).Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, "grace@example.com", dto.UpdateAccountRequest{
		Email: strPtr("GRACE@example.com"),
	})

	suite.NoError(err)
	suite.Equal("grace@example.com", account.Email)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

// --- ResetPassword ---

func (suite *AccountServiceTestSuite) TestResetPassword_Success() {
	ctx := context.Background()
	stored := &domain.Account{Email: "grace@example.com", Password: "old-secret"}

	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "grace@example.com").Return(stored, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, "grace@example.com", mock.MatchedBy(func(a domain.Account) bool {
		return a.Password == "new-secret"
	})).Return(nil).Once()

	err := suite.service.ResetPassword(ctx, "grace@example.com", "new-secret")

	suite.NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestResetPassword_TooShort() {
	err := suite.service.ResetPassword(context.Background(), "grace@example.com", "abc")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByEmail", mock.Anything, mock.Anything)
}

// --- DeleteAccount ---

func (suite *AccountServiceTestSuite) TestDeleteAccount_RefusesSelfDeletion() {
	err := suite.service.DeleteAccount(context.Background(), "Admin@Example.com", "admin@example.com")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_OtherAccount() {
	ctx := context.Background()
	suite.mockAccountRepo.On("DeleteAccount", ctx, "grace@example.com").Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, "grace@example.com", "admin@example.com")

	suite.NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NotFound() {
	ctx := context.Background()
	suite.mockAccountRepo.On("DeleteAccount", ctx, "ghost@example.com").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAccount(ctx, "ghost@example.com", "admin@example.com")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
