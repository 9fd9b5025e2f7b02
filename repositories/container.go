package repositories

type Repos struct {
	User      UserRepo
	Draft     DraftRepo
	Petition  PetitionRepo
	Signature SignatureRepo
	Comment   CommentRepo
	Group     GroupRepo
	Saved     SavedPetitionRepo
	Report    ReportRepo
	Contact   ContactRepo
	Audit     AuditRepo
}

func New() *Repos {
	return &Repos{
		User:      &DBUserRepo{},
		Draft:     &DBDraftRepo{},
		Petition:  &DBPetitionRepo{},
		Signature: &DBSignatureRepo{},
		Comment:   &DBCommentRepo{},
		Group:     &DBGroupRepo{},
		Saved:     &DBSavedPetitionRepo{},
		Report:    &DBReportRepo{},
		Contact:   &DBContactRepo{},
		Audit:     &DBAuditRepo{},
	}
}
