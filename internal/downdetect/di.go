package downdetect

import (
	"sync"

	logs_core "logquery/internal/features/logs/core"
)

var (
	downdetectService    *DowndetectService
	downdetectController *DowndetectController
	downdetectOnce       sync.Once
)

func initDowndetect() {
	downdetectOnce.Do(func() {
		downdetectService = NewDowndetectService(logs_core.GetLogServiceRepository())
		downdetectController = &DowndetectController{downdetectService}
	})
}

func NewDowndetectService(logServicePinger LogServicePinger) *DowndetectService {
	return &DowndetectService{logServicePinger}
}

func GetDowndetectService() *DowndetectService {
	initDowndetect()
	return downdetectService
}

func GetDowndetectController() *DowndetectController {
	initDowndetect()
	return downdetectController
}
