package service

import "github.com/Nick-the-BinaryTree/allergy-albert/internal/model"

// buttonTemplate is the sample button message sent for "button"
func buttonTemplate() model.ReplyAction {
	return model.ReplyAction{
		Kind: model.ReplyKindTemplate,
		Template: &model.TemplateSpec{
			TemplateType: model.TemplateTypeButton,
			Text:         "This is test text",
			Buttons: []model.TemplateButton{
				{Type: "web_url", URL: "https://www.oculus.com/en-us/rift/", Title: "Open Web URL"},
				{Type: "postback", Title: "Trigger Postback", Payload: "DEVELOPER_DEFINED_PAYLOAD"},
				{Type: "phone_number", Title: "Call Phone Number", Payload: "+16505551234"},
			},
		},
	}
}

// genericTemplate is the sample carousel sent for "generic". Images are
// served from serverURL.
func genericTemplate(serverURL string) model.ReplyAction {
	return model.ReplyAction{
		Kind: model.ReplyKindTemplate,
		Template: &model.TemplateSpec{
			TemplateType: model.TemplateTypeGeneric,
			Elements: []model.TemplateElement{
				{
					Title:    "rift",
					Subtitle: "Next-generation virtual reality",
					ItemURL:  "https://www.oculus.com/en-us/rift/",
					ImageURL: serverURL + "/assets/rift.png",
					Buttons: []model.TemplateButton{
						{Type: "web_url", URL: "https://www.oculus.com/en-us/rift/", Title: "Open Web URL"},
						{Type: "postback", Title: "Call Postback", Payload: "Payload for first bubble"},
					},
				},
				{
					Title:    "touch",
					Subtitle: "Your Hands, Now in VR",
					ItemURL:  "https://www.oculus.com/en-us/touch/",
					ImageURL: serverURL + "/assets/touch.png",
					Buttons: []model.TemplateButton{
						{Type: "web_url", URL: "https://www.oculus.com/en-us/touch/", Title: "Open Web URL"},
						{Type: "postback", Title: "Call Postback", Payload: "Payload for second bubble"},
					},
				},
			},
		},
	}
}
