package catalog

// DefaultCollection retorna a coleção embutida que semeia um acervo novo.
// Todas as imagens usam o esquema procgen://, sintetizado localmente pelo
// renderizador; Source registra a proveniência da obra original.
func DefaultCollection() []Record {
	return []Record{
		{
			ID: "mv_0001", Title: "Mona Lisa", Artist: "Leonardo da Vinci",
			Description: "Retrato de Lisa Gherardini, célebre pelo sorriso ambíguo e pelo sfumato.",
			Year:        1503, Source: "Museu do Louvre", URL: "procgen://mv_0001",
			Themes: []string{"classical", "portrait"},
		},
		{
			ID: "mv_0002", Title: "O Nascimento de Vênus", Artist: "Sandro Botticelli",
			Description: "Vênus emerge do mar sobre uma concha, ícone do Renascimento florentino.",
			Year:        1486, Source: "Galleria degli Uffizi", URL: "procgen://mv_0002",
			Themes: []string{"classical"},
		},
		{
			ID: "mv_0003", Title: "A Escola de Atenas", Artist: "Rafael Sanzio",
			Description: "Afresco reunindo os grandes filósofos da Antiguidade sob arcos monumentais.",
			Year:        1511, Source: "Museus Vaticanos", URL: "procgen://mv_0003",
			Themes: []string{"classical"},
		},
		{
			ID: "mv_0004", Title: "Moça com o Brinco de Pérola", Artist: "Johannes Vermeer",
			Description: "Tronie de uma jovem com turbante e brinco de pérola sobre fundo escuro.",
			Year:        1665, Source: "Mauritshuis", URL: "procgen://mv_0004",
			Themes: []string{"classical", "portrait"},
		},
		{
			ID: "mv_0005", Title: "A Ronda Noturna", Artist: "Rembrandt van Rijn",
			Description: "A companhia de milícia do capitão Frans Banninck Cocq em claro-escuro dramático.",
			Year:        1642, Source: "Rijksmuseum", URL: "procgen://mv_0005",
			Themes: []string{"baroque", "portrait"},
		},
		{
			ID: "mv_0006", Title: "As Meninas", Artist: "Diego Velázquez",
			Description: "A infanta Margarida e sua corte em um jogo de espelhos e olhares.",
			Year:        1656, Source: "Museo del Prado", URL: "procgen://mv_0006",
			Themes: []string{"baroque", "portrait"},
		},
		{
			ID: "mv_0007", Title: "A Vocação de São Mateus", Artist: "Caravaggio",
			Description: "Luz rasante corta a taverna no instante do chamado, tenebrismo pleno.",
			Year:        1600, Source: "San Luigi dei Francesi", URL: "procgen://mv_0007",
			Themes: []string{"baroque"},
		},
		{
			ID: "mv_0008", Title: "A Noite Estrelada", Artist: "Vincent van Gogh",
			Description: "Céu em espirais sobre Saint-Rémy, pintado do quarto do sanatório.",
			Year:        1889, Source: "MoMA", URL: "procgen://mv_0008",
			Themes: []string{"modern", "landscape"},
		},
		{
			ID: "mv_0009", Title: "O Grito", Artist: "Edvard Munch",
			Description: "Figura andrógina em angústia diante de um céu incendiado sobre o fiorde.",
			Year:        1893, Source: "Nasjonalmuseet", URL: "procgen://mv_0009",
			Themes: []string{"modern"},
		},
		{
			ID: "mv_0010", Title: "Abaporu", Artist: "Tarsila do Amaral",
			Description: "Figura de membros desmesurados ao sol, estopim do movimento antropofágico.",
			Year:        1928, Source: "Coleção MALBA", URL: "procgen://mv_0010",
			Themes: []string{"modern"},
		},
		{
			ID: "mv_0011", Title: "Operários", Artist: "Tarsila do Amaral",
			Description: "Mosaico de rostos sobre o horizonte fabril de São Paulo.",
			Year:        1933, Source: "Palácio Boa Vista", URL: "procgen://mv_0011",
			Themes: []string{"modern", "portrait"},
		},
		{
			ID: "mv_0012", Title: "Composição VIII", Artist: "Wassily Kandinsky",
			Description: "Geometria flutuante de círculos, linhas e cunhas sobre fundo claro.",
			Year:        1923, Source: "Guggenheim", URL: "procgen://mv_0012",
			Themes: []string{"abstract"},
		},
		{
			ID: "mv_0013", Title: "Quadro Branco sobre Fundo Branco", Artist: "Kazimir Malevich",
			Description: "Suprematismo no limite: um quadrado branco inclinado sobre branco.",
			Year:        1918, Source: "MoMA", URL: "procgen://mv_0013",
			Themes: []string{"abstract", "minimalist"},
		},
		{
			ID: "mv_0014", Title: "Broadway Boogie Woogie", Artist: "Piet Mondrian",
			Description: "Grade vibrante de amarelos e vermelhos pulsando como o tráfego de Manhattan.",
			Year:        1943, Source: "MoMA", URL: "procgen://mv_0014",
			Themes: []string{"abstract", "modern"},
		},
		{
			ID: "mv_0015", Title: "Número 31", Artist: "Jackson Pollock",
			Description: "Dripping em escala mural, teias de esmalte sobre tela crua.",
			Year:        1950, Source: "MoMA", URL: "procgen://mv_0015",
			Themes: []string{"abstract"},
		},
		{
			ID: "mv_0016", Title: "O Viandante sobre o Mar de Névoa", Artist: "Caspar David Friedrich",
			Description: "Caminhante de costas contempla picos emergindo da névoa, sublime romântico.",
			Year:        1818, Source: "Kunsthalle Hamburg", URL: "procgen://mv_0016",
			Themes: []string{"landscape"},
		},
		{
			ID: "mv_0017", Title: "Impressão, Nascer do Sol", Artist: "Claude Monet",
			Description: "O porto de Le Havre diluído em bruma laranja; batizou o Impressionismo.",
			Year:        1872, Source: "Musée Marmottan", URL: "procgen://mv_0017",
			Themes: []string{"landscape", "modern"},
		},
		{
			ID: "mv_0018", Title: "A Grande Onda de Kanagawa", Artist: "Katsushika Hokusai",
			Description: "Xilogravura da onda que se arqueia sobre os barcos diante do Fuji.",
			Year:        1831, Source: "Coleções diversas", URL: "procgen://mv_0018",
			Themes: []string{"landscape"},
		},
		{
			ID: "mv_0019", Title: "Vitória de Samotrácia", Artist: "Autor desconhecido",
			Description: "Niké de mármore avançando contra o vento na proa de um navio.",
			Year:        -190, Source: "Museu do Louvre", URL: "procgen://mv_0019",
			Themes: []string{"sculpture", "classical"},
		},
		{
			ID: "mv_0020", Title: "Davi", Artist: "Michelangelo Buonarroti",
			Description: "O pastor no instante antes do combate, cinco metros de mármore de Carrara.",
			Year:        1504, Source: "Galleria dell'Accademia", URL: "procgen://mv_0020",
			Themes: []string{"sculpture", "classical"},
		},
		{
			ID: "mv_0021", Title: "O Pensador", Artist: "Auguste Rodin",
			Description: "Figura em bronze dobrada sobre o próprio pensamento.",
			Year:        1904, Source: "Musée Rodin", URL: "procgen://mv_0021",
			Themes: []string{"sculpture"},
		},
		{
			ID: "mv_0022", Title: "Pássaro no Espaço", Artist: "Constantin Brâncuși",
			Description: "O voo reduzido a uma lâmina de bronze polido.",
			Year:        1923, Source: "MoMA", URL: "procgen://mv_0022",
			Themes: []string{"sculpture", "minimalist"},
		},
		{
			ID: "mv_0023", Title: "Sem Título (Estudo de Galeria)", Artist: "Atelier MuseumVision",
			Description: "Tela neutra de calibração usada quando um tema não tem obras disponíveis.",
			Year:        2024, Source: "Coleção interna", URL: "procgen://mv_0023",
			Themes: []string{"general"}, Fallback: true,
		},
		{
			ID: "mv_0024", Title: "Estudo em Cinza", Artist: "Atelier MuseumVision",
			Description: "Segunda tela de calibração da coleção interna.",
			Year:        2024, Source: "Coleção interna", URL: "procgen://mv_0024",
			Themes: []string{"general"}, Fallback: true,
		},
		{
			ID: "mv_0025", Title: "Turbina em Repouso", Artist: "Atelier MuseumVision",
			Description: "Fotogravura de maquinário têxtil desativado, série patrimônio fabril.",
			Year:        2019, Source: "Coleção interna", URL: "procgen://mv_0025",
			Themes: []string{"industrial"},
		},
		{
			ID: "mv_0026", Title: "Caldeiraria nº 3", Artist: "Atelier MuseumVision",
			Description: "Geometrias de aço rebitado sob luz zenital, série patrimônio fabril.",
			Year:        2021, Source: "Coleção interna", URL: "procgen://mv_0026",
			Themes: []string{"industrial", "abstract"},
		},
	}
}
