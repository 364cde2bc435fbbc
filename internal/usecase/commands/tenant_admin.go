package commands

import (
	"context"

	"barberbook/internal/domain/service"
	"barberbook/internal/domain/staff"
	reqdto "barberbook/internal/handler/dto/request"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/errs"
	"barberbook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrTenantNotFound  = errs.New("tenant not found")
	ErrNotTenantOwned  = errs.New("resource belongs to another tenant")
	ErrServiceInUse    = errs.New("service has bookings and cannot be deleted")
	ErrInvalidSchedule = errs.New("invalid working hours")
)

type StaffRepository interface {
	Create(ctx context.Context, m *staff.Member) error
	FindByID(ctx context.Context, id uuid.UUID) (*staff.Member, error)
	Update(ctx context.Context, m *staff.Member) error
}

type ServiceRepository interface {
	Create(ctx context.Context, s *service.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error)
	Update(ctx context.Context, s *service.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TenantAdminCommands interface {
	UpdateProfile(ctx context.Context, tenantID uuid.UUID, req reqdto.UpdateTenantProfileRequest) error

	CreateStaff(ctx context.Context, tenantID uuid.UUID, req reqdto.StaffRequest) (*queries.StaffView, error)
	UpdateStaff(ctx context.Context, tenantID, staffID uuid.UUID, req reqdto.StaffRequest) error
	RemoveStaff(ctx context.Context, tenantID, staffID uuid.UUID) error

	CreateService(ctx context.Context, tenantID uuid.UUID, req reqdto.ServiceRequest) (*queries.ServiceView, error)
	UpdateService(ctx context.Context, tenantID, serviceID uuid.UUID, req reqdto.ServiceRequest) error
	DeleteService(ctx context.Context, tenantID, serviceID uuid.UUID) error
}

type tenantAdminCommandsImpl struct {
	tenantRepo  TenantRepository
	staffRepo   StaffRepository
	serviceRepo ServiceRepository
}

func NewTenantAdminCommands(tenantRepo TenantRepository, staffRepo StaffRepository, serviceRepo ServiceRepository) TenantAdminCommands {
	return &tenantAdminCommandsImpl{
		tenantRepo:  tenantRepo,
		staffRepo:   staffRepo,
		serviceRepo: serviceRepo,
	}
}

func (c *tenantAdminCommandsImpl) UpdateProfile(ctx context.Context, tenantID uuid.UUID, req reqdto.UpdateTenantProfileRequest) error {
	tenantEntity, err := c.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTenantNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := tenantEntity.UpdateProfile(req.Name, req.LogoURL); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	if err := c.tenantRepo.UpdateProfile(ctx, tenantEntity); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *tenantAdminCommandsImpl) CreateStaff(ctx context.Context, tenantID uuid.UUID, req reqdto.StaffRequest) (*queries.StaffView, error) {
	hours, err := staff.NewWorkingHours(req.StartHour, req.EndHour, req.BusyHours)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSchedule)
	}
	member, err := staff.NewMember(tenantID, req.Name, hours)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.staffRepo.Create(ctx, member); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return staffViewOf(member), nil
}

func (c *tenantAdminCommandsImpl) UpdateStaff(ctx context.Context, tenantID, staffID uuid.UUID, req reqdto.StaffRequest) error {
	member, err := c.loadTenantStaff(ctx, tenantID, staffID)
	if err != nil {
		return err
	}
	hours, err := staff.NewWorkingHours(req.StartHour, req.EndHour, req.BusyHours)
	if err != nil {
		return errs.Mark(err, ErrInvalidSchedule)
	}
	if err := member.Update(req.Name, hours); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	if err := c.staffRepo.Update(ctx, member); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *tenantAdminCommandsImpl) RemoveStaff(ctx context.Context, tenantID, staffID uuid.UUID) error {
	member, err := c.loadTenantStaff(ctx, tenantID, staffID)
	if err != nil {
		return err
	}
	member.Remove()
	if err := c.staffRepo.Update(ctx, member); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *tenantAdminCommandsImpl) CreateService(ctx context.Context, tenantID uuid.UUID, req reqdto.ServiceRequest) (*queries.ServiceView, error) {
	svc, err := service.NewService(tenantID, req.Name, req.DurationMin, req.PriceCents, req.Category)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.serviceRepo.Create(ctx, svc); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return serviceViewOf(svc), nil
}

func (c *tenantAdminCommandsImpl) UpdateService(ctx context.Context, tenantID, serviceID uuid.UUID, req reqdto.ServiceRequest) error {
	svc, err := c.loadTenantService(ctx, tenantID, serviceID)
	if err != nil {
		return err
	}
	if err := svc.Update(req.Name, req.DurationMin, req.PriceCents, req.Category); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	if err := c.serviceRepo.Update(ctx, svc); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *tenantAdminCommandsImpl) DeleteService(ctx context.Context, tenantID, serviceID uuid.UUID) error {
	if _, err := c.loadTenantService(ctx, tenantID, serviceID); err != nil {
		return err
	}
	if err := c.serviceRepo.Delete(ctx, serviceID); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrServiceInUse
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *tenantAdminCommandsImpl) loadTenantStaff(ctx context.Context, tenantID, staffID uuid.UUID) (*staff.Member, error) {
	member, err := c.staffRepo.FindByID(ctx, staffID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if member.TenantID() != tenantID {
		return nil, ErrNotTenantOwned
	}
	return member, nil
}

func (c *tenantAdminCommandsImpl) loadTenantService(ctx context.Context, tenantID, serviceID uuid.UUID) (*service.Service, error) {
	svc, err := c.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if svc.TenantID() != tenantID {
		return nil, ErrNotTenantOwned
	}
	return svc, nil
}

func staffViewOf(m *staff.Member) *queries.StaffView {
	hours := m.WorkingHours()
	busy := hours.BusyHours
	if busy == nil {
		busy = []int{}
	}
	return &queries.StaffView{
		ID:        m.ID(),
		Name:      m.Name(),
		StartHour: hours.StartHour,
		EndHour:   hours.EndHour,
		BusyHours: busy,
	}
}

func serviceViewOf(s *service.Service) *queries.ServiceView {
	return &queries.ServiceView{
		ID:          s.ID(),
		Name:        s.Name(),
		DurationMin: s.DurationMin(),
		PriceCents:  s.PriceCents(),
		Category:    s.Category(),
	}
}
