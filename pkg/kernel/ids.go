package kernel

type UserID string

func NewUserID(id string) UserID { return UserID(id) }
func (u UserID) String() string  { return string(u) }
func (u UserID) IsEmpty() bool   { return string(u) == "" }

type TemplateID string

func NewTemplateID(id string) TemplateID { return TemplateID(id) }
func (t TemplateID) String() string      { return string(t) }
func (t TemplateID) IsEmpty() bool       { return string(t) == "" }

type ResumeID string

func NewResumeID(id string) ResumeID { return ResumeID(id) }
func (r ResumeID) String() string    { return string(r) }
func (r ResumeID) IsEmpty() bool     { return string(r) == "" }

type JobOpeningID string

func NewJobOpeningID(id string) JobOpeningID { return JobOpeningID(id) }
func (j JobOpeningID) String() string        { return string(j) }
func (j JobOpeningID) IsEmpty() bool         { return string(j) == "" }

type ApplicationID string

func NewApplicationID(id string) ApplicationID { return ApplicationID(id) }
func (a ApplicationID) String() string         { return string(a) }
func (a ApplicationID) IsEmpty() bool          { return string(a) == "" }

type FeedbackID string

func NewFeedbackID(id string) FeedbackID { return FeedbackID(id) }
func (f FeedbackID) String() string      { return string(f) }
func (f FeedbackID) IsEmpty() bool       { return string(f) == "" }

type DescriptionID string

func NewDescriptionID(id string) DescriptionID { return DescriptionID(id) }
func (d DescriptionID) String() string         { return string(d) }
func (d DescriptionID) IsEmpty() bool          { return string(d) == "" }
