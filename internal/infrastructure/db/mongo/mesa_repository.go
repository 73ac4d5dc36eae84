package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
	"github.com/pizzeria-brothers/restaurant-system/internal/core/ports"
)

const mesasCollection = "mesas"

// MesaRepository implements ports.MesaRepository over the mesas collection.
// Mesas are seeded externally; this repository only reads and transitions
// them.
type MesaRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMesaRepository(db *mongo.Database, timeout time.Duration) *MesaRepository {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &MesaRepository{coll: db.Collection(mesasCollection), timeout: timeout}
}

func (r *MesaRepository) List(ctx context.Context, filter ports.ListMesasFilter) ([]*domain.Mesa, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := bson.M{}
	if filter.Activa != nil {
		query["activa"] = *filter.Activa
	}
	if filter.Estado != nil {
		query["id_estado_mesa"] = int(*filter.Estado)
	}
	if filter.Ubicacion != "" {
		// Anchored, metacharacters escaped: case-insensitive exact match,
		// never a user-supplied pattern.
		query["ubicacion"] = bson.M{
			"$regex":   "^" + regexp.QuoteMeta(filter.Ubicacion) + "$",
			"$options": "i",
		}
	}

	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "numero", Value: 1}}))
	if err != nil {
		return nil, storeErr("list mesas", err)
	}
	defer cur.Close(ctx)

	var mesas []*domain.Mesa
	if err := cur.All(ctx, &mesas); err != nil {
		return nil, storeErr("decode mesas", err)
	}
	return mesas, nil
}

func (r *MesaRepository) FindByID(ctx context.Context, id int) (*domain.Mesa, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var mesa domain.Mesa
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mesa); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMesaNotFound
		}
		return nil, storeErr("find mesa", err)
	}
	return &mesa, nil
}

// ChangeStatus applies the transition unconditionally and returns the
// updated document. There is no expected-status precondition: concurrent
// writers resolve last-write-wins.
func (r *MesaRepository) ChangeStatus(ctx context.Context, id int, status domain.TableStatus, actingUserID int) (*domain.Mesa, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"id_estado_mesa":      int(status),
		"actualizado_por":     actingUserID,
		"fecha_actualizacion": time.Now().UTC(),
	}}

	var mesa domain.Mesa
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mesa)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMesaNotFound
		}
		return nil, storeErr("update estado mesa", err)
	}
	return &mesa, nil
}

// Statistics aggregates occupancy counts over active mesas store-side.
func (r *MesaRepository) Statistics(ctx context.Context) (domain.TableStatistics, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"activa": true}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$id_estado_mesa",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return domain.TableStatistics{}, storeErr("aggregate mesas", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Estado int `bson:"_id"`
		Count  int `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return domain.TableStatistics{}, storeErr("decode estadísticas", err)
	}

	var stats domain.TableStatistics
	for _, row := range rows {
		stats.Total += row.Count
		switch domain.TableStatus(row.Estado) {
		case domain.StatusDisponible:
			stats.Disponibles += row.Count
		case domain.StatusOcupada:
			stats.Ocupadas += row.Count
		case domain.StatusReservada:
			stats.Reservadas += row.Count
		}
	}
	return stats, nil
}
