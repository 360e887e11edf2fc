package constant

const (
	InquiryStatusNew        = "new"
	InquiryStatusInProgress = "in-progress"
	InquiryStatusResolved   = "resolved"
	InquiryStatusCancelled  = "cancelled"
)

var InquiryStatuses = []string{
	InquiryStatusNew,
	InquiryStatusInProgress,
	InquiryStatusResolved,
	InquiryStatusCancelled,
}

const (
	InquirySubjectDefault = "Property Inquiry"
	ContactSubjectDefault = "Contact Form Submission"
)

// SubjectInquiryCreated is the NATS subject inquiry notifications are
// published on.
const SubjectInquiryCreated = "milimani.inquiry.created"
