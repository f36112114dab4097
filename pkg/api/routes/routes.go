package routes

import (
	"github.com/roamplan/roam/pkg/attractionstore"
	"github.com/roamplan/roam/pkg/notify"
	"github.com/roamplan/roam/pkg/placedirectory"
)

var attractionStore *attractionstore.Store
var placeDirectory *placedirectory.Directory
var pushManager *notify.PushManager

func Setup(store *attractionstore.Store, directory *placedirectory.Directory, push *notify.PushManager) {
	attractionStore = store
	placeDirectory = directory
	pushManager = push
}
