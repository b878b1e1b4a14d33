package logs_rendering

var viewerController = &ViewerController{
	page: mustParsePage(),
}

func GetViewerController() *ViewerController {
	return viewerController
}
