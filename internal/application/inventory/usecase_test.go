package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/search"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: repos en memoria + TxRunner que simula rollback
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	materials map[string]entity.Material
	logs      []entity.MovementLog
	binTxs    []entity.BinTransaction

	failLogCreate bool // simula fallo del store al escribir el log
}

func newFakeStore() *fakeStore {
	return &fakeStore{materials: make(map[string]entity.Material)}
}

type fakeMaterialRepo struct{ s *fakeStore }

func (r *fakeMaterialRepo) GetByCode(_ context.Context, code string) (*entity.Material, error) {
	if m, ok := r.s.materials[code]; ok {
		copia := m
		return &copia, nil
	}
	return nil, nil
}

func (r *fakeMaterialRepo) GetByCodeForUpdate(ctx context.Context, code string) (*entity.Material, error) {
	return r.GetByCode(ctx, code)
}

func (r *fakeMaterialRepo) Upsert(_ context.Context, m *entity.Material) error {
	r.s.materials[m.Code] = *m
	return nil
}

func (r *fakeMaterialRepo) Delete(_ context.Context, code string) error {
	delete(r.s.materials, code)
	return nil
}

func (r *fakeMaterialRepo) List(_ context.Context, _ search.Term) ([]*entity.Material, error) {
	return nil, nil
}

func (r *fakeMaterialRepo) ResetQuantities(_ context.Context) error { return nil }

func (r *fakeMaterialRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.s.materials)), nil
}

type fakeLogRepo struct{ s *fakeStore }

func (r *fakeLogRepo) Create(_ context.Context, log *entity.MovementLog) error {
	if r.s.failLogCreate {
		return errors.New("store no disponible")
	}
	r.s.logs = append(r.s.logs, *log)
	return nil
}

func (r *fakeLogRepo) ListRecent(_ context.Context, limit int) ([]*entity.MovementLog, error) {
	return nil, nil
}

func (r *fakeLogRepo) CountByActionSince(_ context.Context, _ string, _ time.Time) (int64, error) {
	return 0, nil
}

func (r *fakeLogRepo) Clear(_ context.Context) error { return nil }

type fakeBinTxRepo struct{ s *fakeStore }

func (r *fakeBinTxRepo) Create(_ context.Context, tx *entity.BinTransaction) error {
	r.s.binTxs = append(r.s.binTxs, *tx)
	return nil
}

func (r *fakeBinTxRepo) ListByMaterial(_ context.Context, _ string) ([]*entity.BinTransaction, error) {
	return nil, nil
}

// fakeTxRunner ejecuta el callback sobre el store en memoria. Si fn falla,
// restaura el snapshot previo: mismo contrato que la transacción real.
type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	materialRepo repository.MaterialRepository,
	logRepo repository.MovementLogRepository,
	binTxRepo repository.BinTransactionRepository,
) error) error {
	snapshot := r.snapshot()
	err := fn(&fakeMaterialRepo{r.s}, &fakeLogRepo{r.s}, &fakeBinTxRepo{r.s})
	if err != nil {
		r.restore(snapshot)
		return err
	}
	return nil
}

func (r *fakeTxRunner) snapshot() fakeStore {
	materials := make(map[string]entity.Material, len(r.s.materials))
	for k, v := range r.s.materials {
		materials[k] = v
	}
	return fakeStore{
		materials: materials,
		logs:      append([]entity.MovementLog(nil), r.s.logs...),
		binTxs:    append([]entity.BinTransaction(nil), r.s.binTxs...),
	}
}

func (r *fakeTxRunner) restore(snap fakeStore) {
	r.s.materials = snap.materials
	r.s.logs = snap.logs
	r.s.binTxs = snap.binTxs
}

func newTestUseCase() (*inventory.UseCase, *fakeStore) {
	store := newFakeStore()
	return inventory.NewUseCase(&fakeTxRunner{store}), store
}

func seedMaterial(store *fakeStore, code string, qty int64, rack, bin string) {
	store.materials[code] = entity.Material{Code: code, Quantity: qty, Rack: rack, Bin: bin, LastUpdated: time.Now()}
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordEntry_CodigoNuevo_CreaMaterial(t *testing.T) {
	uc, store := newTestUseCase()

	result, err := uc.RecordEntry(context.Background(), inventory.EntryInput{
		MaterialCode: "TRIM-001", Quantity: 100, Rack: "A1", Bin: "01", EnteredBy: "Carlos",
	})
	require.NoError(t, err)
	assert.True(t, result.Created, "material nuevo debe señalar creación")
	assert.Equal(t, int64(100), result.Material.Quantity)

	m := store.materials["TRIM-001"]
	assert.Equal(t, int64(100), m.Quantity)
	assert.Equal(t, "A1", m.Rack)
	assert.Equal(t, "01", m.Bin)
}

func TestRecordEntry_SecuenciaDeEntradas_SumaCantidades(t *testing.T) {
	// Propiedad: la cantidad final es la suma de todas las entradas,
	// y rack/bin quedan con los valores de la última entrada.
	uc, store := newTestUseCase()
	ctx := context.Background()

	entradas := []inventory.EntryInput{
		{MaterialCode: "TRIM-001", Quantity: 100, Rack: "A1", Bin: "01"},
		{MaterialCode: "TRIM-001", Quantity: 50, Rack: "A1", Bin: "02"},
		{MaterialCode: "TRIM-001", Quantity: 25, Rack: "B2", Bin: "03"},
	}
	for i, in := range entradas {
		result, err := uc.RecordEntry(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, i == 0, result.Created, "solo la primera entrada crea el material")
	}

	m := store.materials["TRIM-001"]
	assert.Equal(t, int64(175), m.Quantity, "la cantidad final debe ser la suma de las entradas")
	assert.Equal(t, "B2", m.Rack, "rack debe quedar con el valor de la última entrada")
	assert.Equal(t, "03", m.Bin, "bin debe quedar con el valor de la última entrada")
}

func TestRecordEntry_GeneraLogConSaldoPosterior(t *testing.T) {
	uc, store := newTestUseCase()
	ctx := context.Background()
	seedMaterial(store, "TRIM-001", 100, "A1", "01")

	result, err := uc.RecordEntry(ctx, inventory.EntryInput{
		MaterialCode: "TRIM-001", Quantity: 50, Rack: "A1", Bin: "01", EnteredBy: "Carlos", UserID: "u-1",
	})
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, int64(150), result.Material.Quantity)

	require.Len(t, store.logs, 1, "cada entrada exitosa produce exactamente un log")
	log := store.logs[0]
	assert.Equal(t, entity.ActionEntry, log.Action)
	assert.Equal(t, int64(50), log.Quantity)
	assert.Equal(t, int64(150), log.BalanceQty, "balanceQty es la cantidad inmediatamente después de la mutación")
	assert.Equal(t, "Carlos", log.EnteredBy)
	assert.Equal(t, "u-1", log.UserID)
	assert.Empty(t, log.IssuedBy)
}

func TestRecordEntry_GeneraBinTransaction(t *testing.T) {
	uc, store := newTestUseCase()

	_, err := uc.RecordEntry(context.Background(), inventory.EntryInput{
		MaterialCode: "TRIM-001", Quantity: 100, Rack: "A1", Bin: "01", EnteredBy: "Carlos",
	})
	require.NoError(t, err)

	require.Len(t, store.binTxs, 1)
	btx := store.binTxs[0]
	assert.Equal(t, "A1-01", btx.BinLocation)
	assert.Equal(t, int64(100), btx.ReceivedQty)
	assert.Zero(t, btx.IssuedQty, "una entrada no tiene cantidad emitida")
	assert.Equal(t, int64(100), btx.BalanceQty)
	assert.Equal(t, "Carlos", btx.PersonName)
}

func TestRecordEntry_EntradaInvalida(t *testing.T) {
	uc, store := newTestUseCase()
	ctx := context.Background()

	cases := []struct {
		nombre string
		in     inventory.EntryInput
	}{
		{"código vacío", inventory.EntryInput{Quantity: 10, Rack: "A1", Bin: "01"}},
		{"cantidad cero", inventory.EntryInput{MaterialCode: "X", Quantity: 0, Rack: "A1", Bin: "01"}},
		{"cantidad negativa", inventory.EntryInput{MaterialCode: "X", Quantity: -5, Rack: "A1", Bin: "01"}},
		{"rack malformado", inventory.EntryInput{MaterialCode: "X", Quantity: 10, Rack: "1A", Bin: "01"}},
		{"bin malformado", inventory.EntryInput{MaterialCode: "X", Quantity: 10, Rack: "A1", Bin: "001"}},
	}
	for _, c := range cases {
		_, err := uc.RecordEntry(ctx, c.in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, c.nombre)
	}
	assert.Empty(t, store.logs, "entradas inválidas no generan logs")
	assert.Empty(t, store.materials, "entradas inválidas no mutan materiales")
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordIssue_DescuentaCantidad_SinTocarUbicacion(t *testing.T) {
	uc, store := newTestUseCase()
	seedMaterial(store, "TRIM-001", 150, "A1", "01")

	material, err := uc.RecordIssue(context.Background(), inventory.IssueInput{
		MaterialCode: "TRIM-001", Quantity: 30, Rack: "A1", Bin: "01", IssuedBy: "Lucía",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(120), material.Quantity)

	m := store.materials["TRIM-001"]
	assert.Equal(t, int64(120), m.Quantity)
	assert.Equal(t, "A1", m.Rack, "una salida no cambia el rack")
	assert.Equal(t, "01", m.Bin, "una salida no cambia el bin")

	require.Len(t, store.logs, 1)
	assert.Equal(t, entity.ActionIssue, store.logs[0].Action)
	assert.Equal(t, int64(120), store.logs[0].BalanceQty)
	assert.Equal(t, "Lucía", store.logs[0].IssuedBy)

	require.Len(t, store.binTxs, 1)
	assert.Equal(t, int64(30), store.binTxs[0].IssuedQty)
	assert.Zero(t, store.binTxs[0].ReceivedQty)
	assert.Equal(t, int64(120), store.binTxs[0].BalanceQty)
}

func TestRecordIssue_UbicacionCaseInsensitive(t *testing.T) {
	uc, store := newTestUseCase()
	seedMaterial(store, "TRIM-001", 100, "A1", "01")

	_, err := uc.RecordIssue(context.Background(), inventory.IssueInput{
		MaterialCode: "TRIM-001", Quantity: 10, Rack: "a1", Bin: "01",
	})
	assert.NoError(t, err, "la comparación de ubicación no distingue mayúsculas")
}

func TestRecordIssue_MaterialInexistente(t *testing.T) {
	uc, store := newTestUseCase()

	_, err := uc.RecordIssue(context.Background(), inventory.IssueInput{
		MaterialCode: "NO-EXISTE", Quantity: 10, Rack: "A1", Bin: "01",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.logs)
}

func TestRecordIssue_CantidadInsuficiente_NoMuta(t *testing.T) {
	uc, store := newTestUseCase()
	seedMaterial(store, "TRIM-001", 120, "A1", "01")

	_, err := uc.RecordIssue(context.Background(), inventory.IssueInput{
		MaterialCode: "TRIM-001", Quantity: 200, Rack: "A1", Bin: "01",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)

	m := store.materials["TRIM-001"]
	assert.Equal(t, int64(120), m.Quantity, "una salida rechazada nunca muta el material")
	assert.Empty(t, store.logs, "una salida rechazada no deja log")
	assert.Empty(t, store.binTxs)
}

func TestRecordIssue_UbicacionNoCoincide_NoMuta(t *testing.T) {
	uc, store := newTestUseCase()
	seedMaterial(store, "TRIM-001", 100, "A1", "01")

	_, err := uc.RecordIssue(context.Background(), inventory.IssueInput{
		MaterialCode: "TRIM-001", Quantity: 10, Rack: "A1", Bin: "02",
	})
	assert.ErrorIs(t, err, domain.ErrLocationMismatch)

	m := store.materials["TRIM-001"]
	assert.Equal(t, int64(100), m.Quantity)
	assert.Empty(t, store.logs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad: si el log no se puede escribir, la mutación no sobrevive
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordEntry_FalloAlEscribirLog_RevierteLaMutacion(t *testing.T) {
	uc, store := newTestUseCase()
	seedMaterial(store, "TRIM-001", 100, "A1", "01")
	store.failLogCreate = true

	_, err := uc.RecordEntry(context.Background(), inventory.EntryInput{
		MaterialCode: "TRIM-001", Quantity: 50, Rack: "A1", Bin: "01",
	})
	require.Error(t, err, "el fallo del rastro de auditoría es fatal para la operación")

	m := store.materials["TRIM-001"]
	assert.Equal(t, int64(100), m.Quantity, "la mutación debe revertirse junto con el log")
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo del ejemplo de extremo a extremo
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoEntradaSalida_Completo(t *testing.T) {
	uc, store := newTestUseCase()
	ctx := context.Background()
	seedMaterial(store, "TRIM-001", 100, "A1", "01")

	result, err := uc.RecordEntry(ctx, inventory.EntryInput{MaterialCode: "TRIM-001", Quantity: 50, Rack: "A1", Bin: "01"})
	require.NoError(t, err)
	assert.Equal(t, int64(150), result.Material.Quantity)

	material, err := uc.RecordIssue(ctx, inventory.IssueInput{MaterialCode: "TRIM-001", Quantity: 30, Rack: "A1", Bin: "01"})
	require.NoError(t, err)
	assert.Equal(t, int64(120), material.Quantity)

	_, err = uc.RecordIssue(ctx, inventory.IssueInput{MaterialCode: "TRIM-001", Quantity: 200, Rack: "A1", Bin: "01"})
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
	assert.Equal(t, int64(120), store.materials["TRIM-001"].Quantity)

	require.Len(t, store.logs, 2)
	assert.Equal(t, int64(150), store.logs[0].BalanceQty)
	assert.Equal(t, int64(120), store.logs[1].BalanceQty)
}
