package exportManager

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fpessolano/mlogger"
	"github.com/pkg/errors"

	"riglogger/sessions"
	"riglogger/support/globals"
)

// Start sets up the exporter logfile.
func Start() error {
	var err error
	if globals.ExportManagerLog, err = mlogger.DeclareLog("riglogger_exportManager", false); err != nil {
		return errors.Wrap(err, "exportManager.Start: unable to set riglogger_exportManager logfile")
	}
	if err = mlogger.SetTextLimit(globals.ExportManagerLog, 50, 50, 12); err != nil {
		return errors.Wrap(err, "exportManager.Start: logfile setup failed")
	}
	mlogger.Info(globals.ExportManagerLog,
		mlogger.LoggerData{Id: "exportManager.Start",
			Message: "service started",
			Data: []int{0}, Aggregate: true})
	return nil
}

// Save writes the registry to a timestamped workbook in dir. An empty
// registry is skipped. A write failure is reported, not fatal.
func Save(registry *sessions.Registry, dir string) (string, error) {
	if registry.Empty() {
		fmt.Println("没有采集到任何数据，无需保存。")
		return "", nil
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", errors.Wrap(err, "exportManager.Save: unable to prepare the export folder")
	}
	path := filepath.Join(dir, fmt.Sprintf("structured_experiment_%d.xlsx", time.Now().Unix()))
	fmt.Printf("\n正在保存数据到 %s ...\n", path)

	workbook := buildWorkbook(registry)
	defer func() { _ = workbook.Close() }()
	if err := workbook.SaveAs(path); err != nil {
		fmt.Printf("保存文件失败: %v\n", err)
		mlogger.Error(globals.ExportManagerLog,
			mlogger.LoggerData{Id: "exportManager.Save",
				Message: "workbook write failed: " + err.Error(),
				Data: []int{1}, Aggregate: true})
		return "", errors.Wrap(err, "exportManager.Save: workbook write failed")
	}
	fmt.Printf("成功！数据已保存到 %s\n", path)
	mlogger.Info(globals.ExportManagerLog,
		mlogger.LoggerData{Id: "exportManager.Save",
			Message: "workbook saved",
			Data: []int{registry.Sessions(), registry.Samples()}, Aggregate: true})
	return path, nil
}
