package services

import (
	"github.com/meinwort/meinwort-go/repositories"
	"github.com/meinwort/meinwort-go/storage"
	"github.com/meinwort/meinwort-go/websocket"
)

type Services struct {
	User      *UserService
	Wizard    *WizardService
	Petition  *PetitionService
	Signature *SignatureService
	Comment   *CommentService
	Group     *GroupService
	Contact   *ContactService
	Admin     *AdminService
}

func New(repos *repositories.Repos, store storage.Store, hub *websocket.Hub, tracker *websocket.CountTracker) *Services {
	return &Services{
		User:      NewUserService(repos),
		Wizard:    NewWizardService(repos),
		Petition:  NewPetitionService(repos, store),
		Signature: NewSignatureService(repos, hub, tracker),
		Comment:   NewCommentService(repos),
		Group:     NewGroupService(repos, store, hub),
		Contact:   NewContactService(repos),
		Admin:     NewAdminService(repos),
	}
}
