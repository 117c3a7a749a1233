package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// fileOrder is one entry of the snapshot file. The layout matches the API's
// order representation so the file can be read and edited by hand.
type fileOrder struct {
	ID           int64        `json:"id"`
	Company      string       `json:"company"`
	OrderDate    string       `json:"orderDate"`
	TotalVolumes int          `json:"totalVolumes"`
	Items        []fileItem   `json:"items"`
	ReceivedAt   time.Time    `json:"receivedAt"`
	Status       order.Status `json:"status"`
}

type fileItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func loadSnapshot(path string) (state, error) {
	st := state{orders: make(map[kernel.OrderID]record)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return state{}, err
	}
	if len(data) == 0 {
		return st, nil
	}

	var entries []fileOrder
	if err = json.Unmarshal(data, &entries); err != nil {
		return state{}, fmt.Errorf("decode %s: %w", path, err)
	}

	for i, entry := range entries {
		rec, recErr := entry.toRecord()
		if recErr != nil {
			return state{}, fmt.Errorf("entry %d of %s: %w", i, path, recErr)
		}
		if _, dup := st.orders[rec.id]; dup {
			return state{}, fmt.Errorf("entry %d of %s: duplicate id %s", i, path, rec.id)
		}
		st.orders[rec.id] = rec
		st.maxID = max(st.maxID, rec.id)
	}
	return st, nil
}

func (f fileOrder) toRecord() (record, error) {
	items := make([]order.Item, 0, len(f.Items))
	for _, raw := range f.Items {
		item, err := order.NewItem(raw.Name, raw.Quantity)
		if err != nil {
			return record{}, err
		}
		items = append(items, item)
	}

	details, err := order.NewDetails(f.Company, f.OrderDate, f.TotalVolumes, items)
	if err != nil {
		return record{}, err
	}

	o, err := order.RestoreOrder(kernel.OrderID(f.ID), f.ReceivedAt.UTC(), details, f.Status)
	if err != nil {
		return record{}, err
	}
	return record{id: o.ID(), details: o.Details(), receivedAt: o.ReceivedAt(), status: o.Status()}, nil
}

// writeSnapshot replaces path atomically: a crash leaves either the old or the
// new file, never a truncated one.
func writeSnapshot(path string, st state) error {
	records := sortedRecords(&st)
	entries := make([]fileOrder, 0, len(records))
	for _, rec := range records {
		items := make([]fileItem, 0, len(rec.details.Items()))
		for _, item := range rec.details.Items() {
			items = append(items, fileItem{Name: item.Name(), Quantity: item.Quantity()})
		}
		entries = append(entries, fileOrder{
			ID:           rec.id.Int64(),
			Company:      rec.details.Company(),
			OrderDate:    rec.details.OrderDate(),
			TotalVolumes: rec.details.TotalVolumes(),
			Items:        items,
			ReceivedAt:   rec.receivedAt,
			Status:       rec.status,
		})
	}

	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".orders-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
