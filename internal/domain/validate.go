package domain

// Pure validation. No I/O; every check is a hard bound with
// equality-or-under semantics.

func ValidateName(name string) error {
	if len(name) > MaxNameLength {
		return FieldTooLongError{Field: "name", Max: MaxNameLength, Len: len(name)}
	}
	return nil
}

func ValidateBio(bio string) error {
	if len(bio) > MaxBioLength {
		return FieldTooLongError{Field: "bio", Max: MaxBioLength, Len: len(bio)}
	}
	return nil
}

func ValidateLinks(links []string) error {
	if len(links) > MaxLinkCount {
		return TooManyLinksError{Count: len(links)}
	}
	for _, link := range links {
		if len(link) > MaxLinkLength {
			return FieldTooLongError{Field: "link", Max: MaxLinkLength, Len: len(link)}
		}
	}
	return nil
}

func ValidateProfile(name string, bio string, links []string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidateBio(bio); err != nil {
		return err
	}
	return ValidateLinks(links)
}

func ValidateWork(title string, description string, contentURL string) error {
	if len(title) > MaxTitleLength {
		return FieldTooLongError{Field: "title", Max: MaxTitleLength, Len: len(title)}
	}
	if len(description) > MaxDescriptionLength {
		return FieldTooLongError{Field: "description", Max: MaxDescriptionLength, Len: len(description)}
	}
	if len(contentURL) > MaxContentURLLength {
		return FieldTooLongError{Field: "contentUrl", Max: MaxContentURLLength, Len: len(contentURL)}
	}
	return nil
}

// ValidateInteraction enforces the kind/comment pairing: a comment is
// required iff kind is Comment.
func ValidateInteraction(kind InteractionKind, comment *string) error {
	switch kind {
	case InteractionLike:
		if comment != nil {
			return InvalidInteractionError{Reason: "comment text not allowed on a like"}
		}
	case InteractionComment:
		if comment == nil {
			return InvalidInteractionError{Reason: "comment text is required"}
		}
		if len(*comment) > MaxCommentLength {
			return FieldTooLongError{Field: "comment", Max: MaxCommentLength, Len: len(*comment)}
		}
	default:
		return InvalidInteractionError{Reason: "unknown interaction kind"}
	}
	return nil
}

func ValidateCollabMessage(message string) error {
	if len(message) > MaxCollabMsgLength {
		return FieldTooLongError{Field: "message", Max: MaxCollabMsgLength, Len: len(message)}
	}
	return nil
}

func ValidateAmount(amount uint64) error {
	if amount == 0 {
		return InvalidAmountError{}
	}
	return nil
}
