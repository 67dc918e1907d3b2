package render

import "html/template"

// userLink labels one profile page link.
type userLink struct {
	ID   int
	Name string
}

// userList is one titled relationship section on a profile page.
type userList struct {
	Heading string
	Links   []userLink
}

// indexData feeds the index page template.
type indexData struct {
	Title string
	Users []userLink
}

// profileData feeds one userN.html template.
type profileData struct {
	SiteTitle  string
	Name       string
	Location   string
	PictureURL string
	Follows    userList
	Followers  userList
	Mutuals    userList
}

const indexTemplateText = `<!DOCTYPE html>
<html>
<head>
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}: User List</h1>
<ol>
{{range .Users}}<li><a href="user{{.ID}}.html">{{.Name}}</a></li>
{{end}}</ol>
</body>
</html>
`

const profileTemplateText = `<!DOCTYPE html>
<html>
<head>
<title>{{.Name}} Profile</title>
</head>
<body>
<h2><a href="index.html">{{.SiteTitle}}</a></h2>
<h1>{{.Name}}{{if .Location}} in {{.Location}}{{end}}</h1>
{{if .PictureURL}}<img alt="Profile pic" src="{{.PictureURL}}" />
{{end}}{{template "userList" .Follows}}{{template "userList" .Followers}}{{template "userList" .Mutuals}}</body>
</html>
`

const userListTemplateText = `<h2>{{.Heading}}</h2>
{{if .Links}}<ul>
{{range .Links}}<li><a href="user{{.ID}}.html">{{.Name}}</a></li>
{{end}}</ul>
{{else}}<p>None</p>
{{end}}`

var indexTemplate = template.Must(template.New("index").Parse(indexTemplateText))

var profileTemplate = func() *template.Template {
	t := template.Must(template.New("profile").Parse(profileTemplateText))
	template.Must(t.New("userList").Parse(userListTemplateText))
	return t
}()
