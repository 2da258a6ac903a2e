package services

import (
	"errors"
	"fmt"

	"github.com/IEarari/Seeds/entity"
	"github.com/IEarari/Seeds/pkg/apperr"
	"github.com/IEarari/Seeds/repository"
	"gorm.io/gorm"
)

type MenuService struct {
	Repo  *repository.MenuRepository
	Audit *AuditService
}

func NewMenuService(repo *repository.MenuRepository, audit *AuditService) *MenuService {
	return &MenuService{Repo: repo, Audit: audit}
}

func (s *MenuService) List() ([]entity.Menu, error) {
	return s.Repo.FindAll()
}

func (s *MenuService) Get(name string) (*entity.Menu, error) {
	menu, err := s.Repo.FindByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return menu, nil
}

// Replace overwrites the whole list, deduplicating while preserving the
// order of first appearance. Creates the list when absent.
func (s *MenuService) Replace(actorID uint, name string, items []string) (*entity.Menu, error) {
	menu, err := s.Repo.FindByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		menu = &entity.Menu{Name: name}
	} else if err != nil {
		return nil, err
	}

	menu.Items = dedupe(items)
	menu.UpdatedBy = &actorID
	if err := s.Repo.Save(menu); err != nil {
		return nil, err
	}

	s.Audit.Write(entity.AuditMenuChange, actorID, menuTarget(name), map[string]any{
		"itemsCount": len(menu.Items),
	})
	return menu, nil
}

// AddItem appends once; adding an existing item is a no-op. The list must
// already exist.
func (s *MenuService) AddItem(actorID uint, name, item string) (*entity.Menu, error) {
	menu, err := s.Get(name)
	if err != nil {
		return nil, err
	}

	if !contains(menu.Items, item) {
		menu.Items = append(menu.Items, item)
		menu.UpdatedBy = &actorID
		if err := s.Repo.Save(menu); err != nil {
			return nil, err
		}
	}

	s.Audit.Write(entity.AuditMenuItemAdd, actorID, menuTarget(name), map[string]any{
		"item": item,
	})
	return menu, nil
}

// RemoveItem filters out every occurrence; removing an absent item is a
// no-op. The list must already exist.
func (s *MenuService) RemoveItem(actorID uint, name, item string) (*entity.Menu, error) {
	menu, err := s.Get(name)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(menu.Items))
	for _, it := range menu.Items {
		if it != item {
			kept = append(kept, it)
		}
	}
	menu.Items = kept
	menu.UpdatedBy = &actorID
	if err := s.Repo.Save(menu); err != nil {
		return nil, err
	}

	s.Audit.Write(entity.AuditMenuItemDelete, actorID, menuTarget(name), map[string]any{
		"item": item,
	})
	return menu, nil
}

func menuTarget(name string) string {
	return fmt.Sprintf("menus/%s", name)
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}

func contains(items []string, item string) bool {
	for _, it := range items {
		if it == item {
			return true
		}
	}
	return false
}
