package board

import "encoding/xml"

// Backend represents the board backend XML document.
type Backend struct {
	XMLName xml.Name `xml:"board"`
	Site    string   `xml:"site,attr"`
	Posts   []Post   `xml:"post"`
}

type Post struct {
	ID      string `xml:"id,attr"`
	Time    string `xml:"time,attr"`
	Info    string `xml:"info"`
	Message string `xml:"message"`
	Login   string `xml:"login"`
}
