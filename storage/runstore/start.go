package runstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fpessolano/mlogger"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"riglogger/support/globals"
)

var archive *bolt.DB

const (
	runs = "runs" // run records by id
	meta = "meta" // archive counters
)

// Start opens the run archive and prepares its buckets. The archive is an
// optional service, so failures are returned instead of being fatal.
func Start() error {
	var err error
	if globals.RunStoreLog, err = mlogger.DeclareLog("riglogger_runstore", false); err != nil {
		return errors.Wrap(err, "runstore.Start: unable to set riglogger_runstore logfile")
	}
	if err = mlogger.SetTextLimit(globals.RunStoreLog, 80, 20, 10); err != nil {
		return errors.Wrap(err, "runstore.Start: logfile setup failed")
	}

	if err = os.MkdirAll(globals.ArchivePath, os.ModePerm); err != nil {
		return errors.Wrap(err, "runstore.Start: unable to prepare the archive folder")
	}
	if archive, err = bolt.Open(filepath.Join(globals.ArchivePath, "rig.db"), 0600, nil); err != nil {
		return errors.Wrap(err, "runstore.Start: unable to open the run archive")
	}

	//noinspection GoNilness
	if err = archive.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(runs))
		if err != nil {
			return errors.New("could not create " + runs + " bucket: " + err.Error())
		}
		_, err = tx.CreateBucketIfNotExists([]byte(meta))
		if err != nil {
			return errors.New("could not create " + meta + " bucket: " + err.Error())
		}
		return nil
	}); err != nil {
		return errors.Wrap(err, "runstore.Start: error in opening buckets")
	}

	count, err := Runs()
	if err != nil {
		return err
	}
	mlogger.Info(globals.RunStoreLog,
		mlogger.LoggerData{Id: "runstore.Start", Message: "service started",
			Data: []int{count}, Aggregate: true})
	fmt.Printf("Run archive initialised, %d runs stored\n", count)
	return nil
}

func Close() {
	_ = archive.Close()
	fmt.Println("Run archive closed")
	mlogger.Info(globals.RunStoreLog,
		mlogger.LoggerData{Id: "runstore.Start", Message: "service stopped",
			Data: []int{1}, Aggregate: true})
}
