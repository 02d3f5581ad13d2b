package cv

// Templates embebidos. Delimitadores << >> para no chocar con las llaves
// de LaTeX; todo texto del perfil entra via latex o field, nunca crudo.

const builtinMain = `\documentclass[11pt,a4paper]{article}
\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage[margin=2cm]{geometry}
\usepackage{hyperref}
\usepackage{enumitem}
\setlist{nosep}
\pagestyle{empty}

\begin{document}

\input{sections/header_generated}
\input{sections/about_generated}
\input{sections/experience_generated}
\input{sections/education_generated}
\input{sections/skills_generated}
\input{sections/projects_generated}

\end{document}
`

var builtinSections = map[string]string{
	"header": `\begin{center}
{\Huge \textbf{<< latex .Name >>}}\\[4pt]
<<- if .Title >>
{\large << latex .Title >>}\\[4pt]
<<- end >>
<<- if or .Email .GitHub >>
<<- if .Email >>\href{mailto:<< .Email >>}{<< latex .Email >>}<< end >><< if and .Email .GitHub >> \textbar{} << end >><< if .GitHub >>\href{https://github.com/<< .GitHub >>}{github.com/<< latex .GitHub >>}<< end >>
<<- end >>
\end{center}
`,

	"about": `<< if .About >>\section*{About}
<< latex .About >>
<< end >>`,

	"experience": `<< if .Experience >>\section*{Experience}
<< range .Experience >>\textbf{<< field . "role" >>} \hfill << field . "period" >>\\
\textit{<< field . "company" >>}
<< if field . "description" >>
<< field . "description" >>
<< end >>
\medskip

<< end >><< end >>`,

	"education": `<< if .Education >>\section*{Education}
<< range .Education >>\textbf{<< field . "degree" >>} \hfill << field . "period" >>\\
\textit{<< field . "institution" >>}
\medskip

<< end >><< end >>`,

	"skills": `<< if .Skills >>\section*{Skills}
\begin{itemize}
<< range $category, $items := .Skills >>  \item \textbf{<< latex $category >>}:<< range $items >> << latex . >>;<< end >>
<< end >>\end{itemize}
<< end >>`,

	"projects": `<< if .Projects >>\section*{Projects}
\begin{itemize}
<< range .Projects >>  \item \textbf{<< field . "name" >>}<< if field . "description" >> -- << field . "description" >><< end >>
<< end >>\end{itemize}
<< end >>`,
}
