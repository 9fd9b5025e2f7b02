package handlers

import (
	"github.com/meinwort/meinwort-go/config"
	"github.com/meinwort/meinwort-go/services"
	"github.com/meinwort/meinwort-go/websocket"
)

type Handlers struct {
	User      *UserHandler
	Wizard    *WizardHandler
	Petition  *PetitionHandler
	Signature *SignatureHandler
	Comment   *CommentHandler
	Group     *GroupHandler
	Contact   *ContactHandler
	Admin     *AdminHandler
	Catalog   *CatalogHandler
	WS        *WSHandler
}

func New(svc *services.Services, hub *websocket.Hub, tracker *websocket.CountTracker, catalog config.Catalog) *Handlers {
	return &Handlers{
		User:      NewUserHandler(svc.User),
		Wizard:    NewWizardHandler(svc.Wizard, svc.Petition),
		Petition:  NewPetitionHandler(svc.Petition, svc.Signature),
		Signature: NewSignatureHandler(svc.Signature),
		Comment:   NewCommentHandler(svc.Comment),
		Group:     NewGroupHandler(svc.Group),
		Contact:   NewContactHandler(svc.Contact),
		Admin:     NewAdminHandler(svc.Admin),
		Catalog:   NewCatalogHandler(catalog),
		WS:        NewWSHandler(hub, tracker, svc.Signature, svc.Group),
	}
}
