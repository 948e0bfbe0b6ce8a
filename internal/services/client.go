package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/types"
)

type ClientService struct {
	clientRepository repositories.ClientRepositoryInterface
}

func NewClientService(clientRepository repositories.ClientRepositoryInterface) *ClientService {
	return &ClientService{clientRepository: clientRepository}
}

func clientToDTO(c *entities.Client) dto.ClientDTO {
	out := dto.ClientDTO{
		ID:             c.ID,
		Name:           c.Name,
		Identification: c.Identification,
		Email:          c.Email,
		Phone:          c.Phone,
	}
	out.Area = shortAreaDTO(c.Area)
	return out
}

func (s *ClientService) GetClients(ctx context.Context, filter types.Filter) ([]dto.ClientDTO, uint64, error) {
	clients, total, err := s.clientRepository.GetClients(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.ClientDTO, 0, len(clients))
	for i := range clients {
		out = append(out, clientToDTO(&clients[i]))
	}
	return out, total, nil
}

func (s *ClientService) FindClient(ctx context.Context, id uint64) (*dto.ClientDTO, error) {
	c, err := s.clientRepository.FindClient(ctx, id)
	if err != nil {
		return nil, err
	}
	out := clientToDTO(c)
	return &out, nil
}

func (s *ClientService) CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*dto.ClientDTO, error) {
	newID, err := s.clientRepository.CreateClient(ctx, entities.Client{
		Name:           payload.Name,
		Identification: payload.Identification,
		Email:          payload.Email,
		Phone:          payload.Phone,
		AreaID:         payload.AreaID,
	})
	if err != nil {
		return nil, err
	}
	return s.FindClient(ctx, newID)
}

func (s *ClientService) UpdateClient(ctx context.Context, id uint64, payload dto.UpdateClientDTO) (*dto.ClientDTO, error) {
	c, err := s.clientRepository.FindClient(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Name != nil {
		c.Name = *payload.Name
	}
	if payload.Identification != nil {
		c.Identification = *payload.Identification
	}
	if payload.Email != nil {
		c.Email = payload.Email
	}
	if payload.Phone != nil {
		c.Phone = payload.Phone
	}
	if payload.AreaID != nil {
		c.AreaID = payload.AreaID
	}
	if err := s.clientRepository.UpdateClient(ctx, id, *c); err != nil {
		return nil, err
	}
	return s.FindClient(ctx, id)
}

func (s *ClientService) DeleteClient(ctx context.Context, id uint64) error {
	return s.clientRepository.DeleteClient(ctx, id)
}
