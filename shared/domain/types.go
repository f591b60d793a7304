package domain

type (
	Email         = string
	EnvelopeUUID  = string
	DocumentUUID  = string
	WorkspaceUUID = string
	RenderId      = string
	TemplateId    = string
)
