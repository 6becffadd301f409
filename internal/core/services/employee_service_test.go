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

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo *MockEmployeeRepository
	service          *services.EmployeeService
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewEmployeeService(suite.mockEmployeeRepo)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_NormalizesEmail() {
	ctx := context.Background()
	suite.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "dev@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeRepo.On("SaveEmployee", ctx, domain.Employee{
		Email:      "dev@example.com",
		Role:       "Developer",
		Department: "Engineering",
	}).Return(nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, dto.CreateEmployeeRequest{
		Email:      " Dev@Example.com ",
		Role:       "Developer",
		Department: "Engineering",
	})

	suite.NoError(err)
	suite.Equal("dev@example.com", employee.Email)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_MissingFields() {
	employee, err := suite.service.CreateEmployee(context.Background(), dto.CreateEmployeeRequest{
		Email: "dev@example.com",
		Role:  "Developer",
	})

	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Duplicate() {
	ctx := context.Background()
	suite.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "dev@example.com").
		Return(&domain.Employee{Email: "dev@example.com"}, nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, dto.CreateEmployeeRequest{
		Email:      "dev@example.com",
		Role:       "Developer",
		Department: "Engineering",
	})

	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_ChangeDepartmentOnly() {
	ctx := context.Background()
	stored := &domain.Employee{Email: "dev@example.com", Role: "Developer", Department: "Engineering"}
	newDepartment := "HR"

	suite.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "dev@example.com").Return(stored, nil).Once()
	suite.mockEmployeeRepo.On("UpdateEmployee", ctx, "dev@example.com", domain.Employee{
		Email:      "dev@example.com",
		Role:       "Developer",
		Department: "HR",
	}).Return(nil).Once()

	employee, err := suite.service.UpdateEmployee(ctx, "dev@example.com", dto.UpdateEmployeeRequest{
		Department: &newDepartment,
	})

	suite.NoError(err)
	suite.Equal("HR", employee.Department)
	suite.Equal("Developer", employee.Role)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_ChangedEmailMustBeFree() {
	ctx := context.Background()
	stored := &domain.Employee{Email: "dev@example.com", Role: "Developer", Department: "Engineering"}
	taken := "lead@example.com"

	suite.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "dev@example.com").Return(stored, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "lead@example.com").
		Return(&domain.Employee{Email: "lead@example.com"}, nil).Once()

	employee, err := suite.service.UpdateEmployee(ctx, "dev@example.com", dto.UpdateEmployeeRequest{
		Email: &taken,
	})

	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "UpdateEmployee", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_NotFound() {
	ctx := context.Background()
	suite.mockEmployeeRepo.On("DeleteEmployee", ctx, "ghost@example.com").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEmployee(ctx, "Ghost@Example.com")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
