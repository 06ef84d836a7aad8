package runstore

import (
	"encoding/json"

	"github.com/fpessolano/mlogger"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"riglogger/dataformats"
	"riglogger/support/globals"
)

// Record stores one finished run, assigning it an id when needed. The
// stored run becomes the latest one.
func Record(record dataformats.RunRecord) (string, error) {
	if record.Id == "" {
		record.Id = uuid.New().String()
	}
	data, err := json.Marshal(record)
	if err != nil {
		return "", errors.Wrap(err, "runstore.Record: marshalling failed")
	}
	if err = archive.Update(func(tx *bolt.Tx) error {
		if e := tx.Bucket([]byte(runs)).Put([]byte(record.Id), data); e != nil {
			return errors.New("could not store run " + record.Id + ": " + e.Error())
		}
		return tx.Bucket([]byte(meta)).Put([]byte("last"), []byte(record.Id))
	}); err != nil {
		return "", errors.Wrap(err, "runstore.Record: archive write failed")
	}
	mlogger.Info(globals.RunStoreLog,
		mlogger.LoggerData{Id: "runstore.Record",
			Message: "run " + record.Id + " archived",
			Data: []int{record.Sessions, record.Samples}, Aggregate: true})
	return record.Id, nil
}

// Load retrieves a stored run by id.
func Load(id string) (dataformats.RunRecord, error) {
	var record dataformats.RunRecord
	err := archive.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(runs)).Get([]byte(id))
		if raw == nil {
			return globals.KeyInvalid
		}
		return json.Unmarshal(raw, &record)
	})
	return record, err
}

// Last returns the most recently archived run.
func Last() (dataformats.RunRecord, error) {
	id := ""
	if err := archive.View(func(tx *bolt.Tx) error {
		if raw := tx.Bucket([]byte(meta)).Get([]byte("last")); raw != nil {
			id = string(raw)
		}
		return nil
	}); err != nil {
		return dataformats.RunRecord{}, errors.Wrap(err, "runstore.Last: archive read failed")
	}
	if id == "" {
		return dataformats.RunRecord{}, globals.KeyInvalid
	}
	return Load(id)
}

// Runs reports how many runs the archive holds.
func Runs() (int, error) {
	count := 0
	err := archive.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(runs)).ForEach(func(k, v []byte) error {
			count++
			return nil
		})
	})
	return count, err
}
