package usecase

import (
	"context"
	"fmt"

	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/contracts"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
)

type SavePropertyUseCase struct {
	api        port.PropertyAPIPort
	properties port.Invalidator
}

func NewSavePropertyUseCase(api port.PropertyAPIPort, properties port.Invalidator) *SavePropertyUseCase {
	return &SavePropertyUseCase{api: api, properties: properties}
}

// Execute validates the variant attributes against the schema registry,
// refreshes derived pricing and writes the property. A zero id creates,
// anything else updates. The property cache is invalidated on success.
func (uc *SavePropertyUseCase) Execute(ctx context.Context, p domain.Property) (domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "SaveProperty",
		"property_id": p.ID,
	})

	if p.TypeSpecific == nil {
		return domain.Property{}, fmt.Errorf("property is missing its type-specific attributes")
	}
	if p.TypeSpecific.Kind() != p.PropertyType {
		return domain.Property{}, fmt.Errorf("attribute variant %s does not match property type %s",
			p.TypeSpecific.Kind(), p.PropertyType)
	}

	domain.RecomputeDerived(p.TypeSpecific)
	if err := contracts.ValidateVariant(p.TypeSpecific); err != nil {
		logger.Warn("Property payload failed validation", port.Fields{"error": err.Error()})
		return domain.Property{}, err
	}

	var (
		saved domain.Property
		err   error
	)
	if p.ID == 0 {
		saved, err = uc.api.Create(ctx, p)
	} else {
		saved, err = uc.api.Update(ctx, p)
	}
	if err != nil {
		logger.Error("Property write failed", err, nil)
		return domain.Property{}, err
	}

	uc.properties.Invalidate()
	logger.Info("Property saved", port.Fields{"property_id": saved.ID})
	return saved, nil
}

type DeletePropertyUseCase struct {
	api        port.PropertyAPIPort
	properties port.Invalidator
}

func NewDeletePropertyUseCase(api port.PropertyAPIPort, properties port.Invalidator) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{api: api, properties: properties}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id int64) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": id,
	})

	if err := uc.api.Delete(ctx, id); err != nil {
		logger.Error("Property delete failed", err, nil)
		return err
	}

	uc.properties.Invalidate()
	logger.Info("Property deleted", nil)
	return nil
}
