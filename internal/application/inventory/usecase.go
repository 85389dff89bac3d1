package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/location"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UseCase motor de entradas y salidas de inventario. Cada operación corre en una
// transacción con bloqueo de fila (SELECT FOR UPDATE) sobre el material, de modo
// que entradas y salidas concurrentes sobre el mismo código quedan serializadas
// y el log de auditoría nunca se escribe sin su mutación (ni al revés).
type UseCase struct {
	txRunner TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// EntryInput entrada para RecordEntry.
type EntryInput struct {
	MaterialCode string
	Quantity     int64
	Rack         string
	Bin          string
	EnteredBy    string // actor explícito (texto libre); nunca se asume "system"
	UserID       string // usuario autenticado (claim del token)
}

// IssueInput entrada para RecordIssue.
type IssueInput struct {
	MaterialCode string
	Quantity     int64
	Rack         string
	Bin          string
	IssuedBy     string
	UserID       string
}

// EntryResult material resultante y si la fila fue creada (no existía antes).
type EntryResult struct {
	Material *entity.Material
	Created  bool
}

// RecordEntry registra una recepción de stock. Si el material existe suma la
// cantidad y sobreescribe rack/bin con los de esta entrada (la ubicación siempre
// refleja la entrada más reciente); si no, crea el material. Siempre deja un
// MovementLog y una BinTransaction con el saldo posterior a la mutación.
// Nunca falla por reglas de negocio: solo por entrada malformada o fallo del store.
func (uc *UseCase) RecordEntry(ctx context.Context, in EntryInput) (*EntryResult, error) {
	if err := validateActionInput(in.MaterialCode, in.Quantity, in.Rack, in.Bin); err != nil {
		return nil, err
	}

	now := time.Now()
	var result EntryResult
	err := uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		logRepo repository.MovementLogRepository,
		binTxRepo repository.BinTransactionRepository,
	) error {
		// Bloquea la fila del material para serializar el read-modify-write
		material, err := materialRepo.GetByCodeForUpdate(ctx, in.MaterialCode)
		if err != nil {
			return err
		}
		created := material == nil
		if created {
			material = &entity.Material{Code: in.MaterialCode}
		}
		material.Quantity += in.Quantity
		material.Rack = in.Rack
		material.Bin = in.Bin
		material.LastUpdated = now
		if err := materialRepo.Upsert(ctx, material); err != nil {
			return err
		}
		if err := logRepo.Create(ctx, &entity.MovementLog{
			ID:           uuid.New().String(),
			MaterialCode: in.MaterialCode,
			Action:       entity.ActionEntry,
			Quantity:     in.Quantity,
			Rack:         in.Rack,
			Bin:          in.Bin,
			BalanceQty:   material.Quantity,
			EnteredBy:    in.EnteredBy,
			UserID:       in.UserID,
			CreatedAt:    now,
		}); err != nil {
			return err
		}
		if err := binTxRepo.Create(ctx, &entity.BinTransaction{
			ID:           uuid.New().String(),
			MaterialCode: in.MaterialCode,
			BinLocation:  location.Compose(in.Rack, in.Bin),
			ReceivedQty:  in.Quantity,
			IssuedQty:    0,
			BalanceQty:   material.Quantity,
			PersonName:   in.EnteredBy,
			CreatedAt:    now,
		}); err != nil {
			return err
		}
		result = EntryResult{Material: material, Created: created}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RecordIssue registra un despacho de stock. Todas las reglas de negocio se
// verifican antes de mutar nada:
//   - ErrNotFound si el material no existe
//   - ErrLocationMismatch si rack/bin no coinciden con los registrados (case-insensitive)
//   - ErrInsufficientQuantity si la cantidad solicitada supera la existente
//
// Rack/bin del material no cambian en una salida; solo cantidad y last_updated.
func (uc *UseCase) RecordIssue(ctx context.Context, in IssueInput) (*entity.Material, error) {
	if err := validateActionInput(in.MaterialCode, in.Quantity, in.Rack, in.Bin); err != nil {
		return nil, err
	}

	now := time.Now()
	var result *entity.Material
	err := uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		logRepo repository.MovementLogRepository,
		binTxRepo repository.BinTransactionRepository,
	) error {
		material, err := materialRepo.GetByCodeForUpdate(ctx, in.MaterialCode)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
		if !location.Equal(material.Rack, material.Bin, in.Rack, in.Bin) {
			return domain.ErrLocationMismatch
		}
		if material.Quantity < in.Quantity {
			return domain.ErrInsufficientQuantity
		}
		material.Quantity -= in.Quantity
		material.LastUpdated = now
		if err := materialRepo.Upsert(ctx, material); err != nil {
			return err
		}
		// El log guarda el rack/bin reclamados en la petición: aunque deben
		// coincidir, el rastro de auditoría conserva lo declarado por el actor.
		if err := logRepo.Create(ctx, &entity.MovementLog{
			ID:           uuid.New().String(),
			MaterialCode: in.MaterialCode,
			Action:       entity.ActionIssue,
			Quantity:     in.Quantity,
			Rack:         in.Rack,
			Bin:          in.Bin,
			BalanceQty:   material.Quantity,
			IssuedBy:     in.IssuedBy,
			UserID:       in.UserID,
			CreatedAt:    now,
		}); err != nil {
			return err
		}
		if err := binTxRepo.Create(ctx, &entity.BinTransaction{
			ID:           uuid.New().String(),
			MaterialCode: in.MaterialCode,
			BinLocation:  location.Compose(in.Rack, in.Bin),
			ReceivedQty:  0,
			IssuedQty:    in.Quantity,
			BalanceQty:   material.Quantity,
			PersonName:   in.IssuedBy,
			CreatedAt:    now,
		}); err != nil {
			return err
		}
		result = material
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// validateActionInput reglas estructurales comunes a entradas y salidas.
func validateActionInput(code string, quantity int64, rack, bin string) error {
	if code == "" || quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if !location.Valid(rack, bin) {
		return domain.ErrInvalidInput
	}
	return nil
}
