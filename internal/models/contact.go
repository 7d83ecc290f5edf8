package models

// ContactRequiredFields lists the mandatory contact form fields, in the order
// they are reported back to the client when missing.
var ContactRequiredFields = []string{"name", "email", "message"}
